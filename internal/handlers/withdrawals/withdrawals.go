package withdrawals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/custody/internal/domain"
	"github.com/GlebRadaev/custody/internal/dto"
	"github.com/GlebRadaev/custody/pkg/auth"
	"github.com/GlebRadaev/custody/pkg/utils"
)

type Service interface {
	CreateRequest(ctx context.Context, userID string, currency domain.Currency, amount decimal.Decimal, destination string) (*domain.WithdrawalRequest, error)
	Approve(ctx context.Context, id uuid.UUID, adminID, txHash, notes string) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, id uuid.UUID, adminID, reason string) (*domain.WithdrawalRequest, error)
	ListPending(ctx context.Context) ([]domain.WithdrawalRequest, error)
	ListUserRequests(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// CreateWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Lock the amount in the caller's wallet and queue the request for admin review.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWithdrawalRequestDTO	true	"Withdrawal"
//	@Success		201		{object}	dto.WithdrawalResponseDTO		"Pending request"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		404		{object}	utils.Response					"Wallet not found"
//	@Failure		422		{object}	utils.Response					"Invalid amount, currency or address"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	created, err := h.withdrawalService.CreateRequest(r.Context(), userID, currency, req.Amount, req.Destination)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWithdrawalResponse(created))
}

// GetWithdrawals godoc
//
//	@Summary		Withdrawal history
//	@Description	The caller's withdrawal requests, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawals"
//	@Success		204	{object}	utils.Response				"Withdrawals not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	requests, err := h.withdrawalService.ListUserRequests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalList(requests))
}

// GetPending godoc
//
//	@Summary		Pending withdrawals
//	@Description	Requests waiting for review, oldest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Pending requests"
//	@Failure		403	{object}	utils.Response				"Admin role required"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/withdrawals/pending [get]
func (h *WithdrawalHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.withdrawalService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalList(requests))
}

// Approve godoc
//
//	@Summary		Approve a withdrawal
//	@Description	Record the on-chain transaction of a pending request and release the locked funds.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Request id"
//	@Param			request	body		dto.ApproveWithdrawalRequestDTO	true	"Settlement"
//	@Success		200		{object}	dto.WithdrawalResponseDTO		"Completed request"
//	@Failure		400		{object}	utils.Response					"Invalid id or body"
//	@Failure		404		{object}	utils.Response					"Request not found"
//	@Failure		409		{object}	utils.Response					"Request is not pending"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *WithdrawalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(string)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}
	var req dto.ApproveWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	completed, err := h.withdrawalService.Approve(r.Context(), id, adminID, req.TxHash, req.Notes)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(completed))
}

// Reject godoc
//
//	@Summary		Reject a withdrawal
//	@Description	Refuse a pending request and return the locked funds to the spendable balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Request id"
//	@Param			request	body		dto.RejectWithdrawalRequestDTO	true	"Reason"
//	@Success		200		{object}	dto.WithdrawalResponseDTO		"Rejected request"
//	@Failure		400		{object}	utils.Response					"Invalid id or body"
//	@Failure		404		{object}	utils.Response					"Request not found"
//	@Failure		409		{object}	utils.Response					"Request is not pending"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *WithdrawalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(string)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}
	var req dto.RejectWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rejected, err := h.withdrawalService.Reject(r.Context(), id, adminID, req.Reason)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(rejected))
}
