package wallets

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/custody/internal/domain"
	"github.com/GlebRadaev/custody/internal/dto"
	"github.com/GlebRadaev/custody/pkg/auth"
	"github.com/GlebRadaev/custody/pkg/utils"
)

type Service interface {
	GenerateWallet(ctx context.Context, userID string, currency domain.Currency) (*domain.WalletView, error)
	InitializeAllWallets(ctx context.Context, userID string) []domain.InitResult
	ListWallets(ctx context.Context, userID string) ([]*domain.WalletView, error)
	RotateWallet(ctx context.Context, userID string, currency domain.Currency, adminID, reason string) (*domain.RotationResult, error)
	GetRotationHistory(ctx context.Context, userID string, currency domain.Currency, limit int) ([]domain.RotationEntry, error)
	Credit(ctx context.Context, userID string, currency domain.Currency, adminID string, amount decimal.Decimal, reference string) (*domain.CreditResult, error)
	VerifyWalletKey(ctx context.Context, userID string, currency domain.Currency) (*domain.KeyVerification, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GenerateWallet godoc
//
//	@Summary		Generate a wallet
//	@Description	Derive the caller's wallet for a currency. Calling it again returns the same address.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			currency	path		string					true	"BTC, ETH or USDT"
//	@Success		201			{object}	dto.WalletResponseDTO	"Wallet"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		422			{object}	utils.Response			"Unsupported currency"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/wallets/{currency} [post]
func (h *WalletHandler) GenerateWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	currency, err := domain.ParseCurrency(chi.URLParam(r, "currency"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	wallet, err := h.walletService.GenerateWallet(r.Context(), userID, currency)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWalletResponse(wallet))
}

// InitializeWallets godoc
//
//	@Summary		Generate every supported wallet
//	@Description	Generate BTC, ETH and USDT wallets for the caller. Each currency succeeds or fails on its own.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InitWalletResponseDTO	"Per-currency outcome"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Router			/api/wallets/init [post]
func (h *WalletHandler) InitializeWallets(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	results := h.walletService.InitializeAllWallets(r.Context(), userID)
	response := make([]dto.InitWalletResponseDTO, len(results))
	for i, res := range results {
		response[i] = dto.InitWalletResponseDTO{Currency: res.Currency.String()}
		if res.Err != nil {
			if utils.StatusFromError(res.Err) == http.StatusInternalServerError {
				response[i].Error = "Internal server error"
			} else {
				response[i].Error = res.Err.Error()
			}
			continue
		}
		wallet := dto.NewWalletResponse(res.Wallet)
		response[i].Wallet = &wallet
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetWallets godoc
//
//	@Summary		List wallets
//	@Description	List the caller's wallets ordered by currency.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WalletResponseDTO	"Wallets"
//	@Success		204	{object}	utils.Response			"No wallets yet"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallets [get]
func (h *WalletHandler) GetWallets(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	wallets, err := h.walletService.ListWallets(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch wallets")
		return
	}
	if len(wallets) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Wallets not found")
		return
	}

	response := make([]dto.WalletResponseDTO, len(wallets))
	for i, wallet := range wallets {
		response[i] = dto.NewWalletResponse(wallet)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RotateWallet godoc
//
//	@Summary		Rotate a wallet address
//	@Description	Move a user's wallet to a fresh derivation. Balances stay, the old address goes to history.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID		path		string						true	"Wallet owner"
//	@Param			currency	path		string						true	"BTC, ETH or USDT"
//	@Param			request		body		dto.RotateWalletRequestDTO	false	"Rotation reason"
//	@Success		200			{object}	dto.RotationResponseDTO		"Rotation result"
//	@Failure		403			{object}	utils.Response				"Admin role required"
//	@Failure		404			{object}	utils.Response				"Wallet not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/wallets/{userID}/{currency}/rotate [post]
func (h *WalletHandler) RotateWallet(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(string)

	currency, err := domain.ParseCurrency(chi.URLParam(r, "currency"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	var req dto.RotateWalletRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := h.walletService.RotateWallet(r.Context(), chi.URLParam(r, "userID"), currency, adminID, req.Reason)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RotationResponseDTO{
		Wallet:     dto.NewWalletResponse(result.Wallet),
		OldAddress: result.OldAddress,
		NewAddress: result.NewAddress,
		RotatedAt:  result.RotatedAt,
	})
}

// GetRotationHistory godoc
//
//	@Summary		Rotation history
//	@Description	Previous addresses of a wallet, newest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID		path		string					true	"Wallet owner"
//	@Param			currency	path		string					true	"BTC, ETH or USDT"
//	@Param			limit		query		int						false	"Page size, 20 by default, at most 100"
//	@Success		200			{array}		dto.RotationEntryDTO	"History"
//	@Failure		400			{object}	utils.Response			"Invalid limit"
//	@Failure		404			{object}	utils.Response			"Wallet not found"
//	@Router			/api/admin/wallets/{userID}/{currency}/rotations [get]
func (h *WalletHandler) GetRotationHistory(w http.ResponseWriter, r *http.Request) {
	currency, err := domain.ParseCurrency(chi.URLParam(r, "currency"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	entries, err := h.walletService.GetRotationHistory(r.Context(), chi.URLParam(r, "userID"), currency, limit)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	response := make([]dto.RotationEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.RotationEntryDTO{
			OldAddress: e.OldAddress,
			Reason:     e.Reason,
			RotatedAt:  e.RotatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreditWallet godoc
//
//	@Summary		Credit a deposit
//	@Description	Add a confirmed deposit to a wallet. A deposit fee rule, if any, is deducted and booked as revenue.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID		path		string					true	"Wallet owner"
//	@Param			currency	path		string					true	"BTC, ETH or USDT"
//	@Param			request		body		dto.CreditRequestDTO	true	"Deposit"
//	@Success		200			{object}	dto.CreditResponseDTO	"Credited wallet"
//	@Failure		400			{object}	utils.Response			"Invalid request body"
//	@Failure		404			{object}	utils.Response			"Wallet not found"
//	@Failure		422			{object}	utils.Response			"Invalid amount"
//	@Router			/api/admin/wallets/{userID}/{currency}/credit [post]
func (h *WalletHandler) CreditWallet(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(string)

	currency, err := domain.ParseCurrency(chi.URLParam(r, "currency"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	var req dto.CreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.walletService.Credit(r.Context(), chi.URLParam(r, "userID"), currency, adminID, req.Amount, req.Reference)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreditResponseDTO{
		Wallet:    dto.NewWalletResponse(result.Wallet),
		Amount:    result.Amount,
		Fee:       result.Fee,
		NetAmount: result.NetAmount,
		Reference: result.Reference,
	})
}

// VerifyWalletKey godoc
//
//	@Summary		Verify a sealed key
//	@Description	Decrypt the wallet's stored key and compare it with a fresh derivation. The key itself is never returned.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID		path		string							true	"Wallet owner"
//	@Param			currency	path		string							true	"BTC, ETH or USDT"
//	@Success		200			{object}	dto.KeyVerificationResponseDTO	"Verification result"
//	@Failure		404			{object}	utils.Response					"Wallet not found"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/wallets/{userID}/{currency}/verify [post]
func (h *WalletHandler) VerifyWalletKey(w http.ResponseWriter, r *http.Request) {
	currency, err := domain.ParseCurrency(chi.URLParam(r, "currency"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	result, err := h.walletService.VerifyWalletKey(r.Context(), chi.URLParam(r, "userID"), currency)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.KeyVerificationResponseDTO{
		WalletID:       result.WalletID,
		Currency:       result.Currency.String(),
		Address:        result.Address,
		DerivedAddress: result.DerivedAddress,
		Match:          result.Match,
	})
}
