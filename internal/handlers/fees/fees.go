package fees

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/custody/internal/domain"
	"github.com/GlebRadaev/custody/internal/dto"
	"github.com/GlebRadaev/custody/pkg/utils"
)

type Service interface {
	Calculate(ctx context.Context, feeType domain.FeeType, currency domain.Currency, amount decimal.Decimal) (*domain.FeeResult, error)
	GetRule(ctx context.Context, id int64) (*domain.FeeRule, error)
	ListRules(ctx context.Context, filter domain.FeeRuleFilter) ([]domain.FeeRule, error)
	CreateRule(ctx context.Context, rule *domain.FeeRule) (*domain.FeeRule, error)
	UpdateRule(ctx context.Context, rule *domain.FeeRule) (*domain.FeeRule, error)
	DeleteRule(ctx context.Context, id int64) error
}

type FeeHandler struct {
	feeService Service
}

func New(feeService Service) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
	}
}

// Preview godoc
//
//	@Summary		Preview a fee
//	@Description	Price an amount under the fee rule that currently applies.
//	@Tags			Fees
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type		query		string						false	"WITHDRAWAL (default) or DEPOSIT"
//	@Param			currency	query		string						true	"BTC, ETH or USDT"
//	@Param			amount		query		string						true	"Gross amount"
//	@Success		200			{object}	dto.FeePreviewResponseDTO	"Fee breakdown"
//	@Failure		400			{object}	utils.Response				"Invalid query"
//	@Failure		422			{object}	utils.Response				"Invalid amount or currency"
//	@Router			/api/fees/preview [get]
func (h *FeeHandler) Preview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	feeType := domain.FeeTypeWithdrawal
	if raw := q.Get("type"); raw != "" {
		parsed, err := domain.ParseFeeType(raw)
		if err != nil {
			utils.RespondWithDomainError(w, err)
			return
		}
		feeType = parsed
	}
	currency, err := domain.ParseCurrency(q.Get("currency"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	result, err := h.feeService.Calculate(r.Context(), feeType, currency, amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFeePreview(result))
}

// ListRules godoc
//
//	@Summary		List fee rules
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type		query		string					false	"Filter by fee type"
//	@Param			currency	query		string					false	"Filter by currency"
//	@Param			active		query		bool					false	"Filter by active flag"
//	@Success		200			{array}		dto.FeeRuleResponseDTO	"Rules"
//	@Failure		400			{object}	utils.Response			"Invalid filter"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/fee-rules [get]
func (h *FeeHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter domain.FeeRuleFilter
	if raw := q.Get("type"); raw != "" {
		feeType, err := domain.ParseFeeType(raw)
		if err != nil {
			utils.RespondWithDomainError(w, err)
			return
		}
		filter.FeeType = &feeType
	}
	if raw := q.Get("currency"); raw != "" {
		currency, err := domain.ParseCurrency(raw)
		if err != nil {
			utils.RespondWithDomainError(w, err)
			return
		}
		filter.Currency = &currency
	}
	if raw := q.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid active flag")
			return
		}
		filter.Active = &active
	}

	rules, err := h.feeService.ListRules(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch fee rules")
		return
	}
	response := make([]dto.FeeRuleResponseDTO, len(rules))
	for i := range rules {
		response[i] = dto.NewFeeRuleResponse(&rules[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRule godoc
//
//	@Summary	Get a fee rule
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int						true	"Rule id"
//	@Success	200	{object}	dto.FeeRuleResponseDTO	"Rule"
//	@Failure	400	{object}	utils.Response			"Invalid id"
//	@Failure	404	{object}	utils.Response			"Rule not found"
//	@Router		/api/admin/fee-rules/{id} [get]
func (h *FeeHandler) GetRule(w http.ResponseWriter, r *http.Request) {
	id, ok := ruleID(w, r)
	if !ok {
		return
	}
	rule, err := h.feeService.GetRule(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFeeRuleResponse(rule))
}

// CreateRule godoc
//
//	@Summary	Create a fee rule
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.FeeRuleRequestDTO	true	"Rule"
//	@Success	201		{object}	dto.FeeRuleResponseDTO	"Created rule"
//	@Failure	400		{object}	utils.Response			"Invalid rule"
//	@Failure	422		{object}	utils.Response			"Unsupported currency"
//	@Router		/api/admin/fee-rules [post]
func (h *FeeHandler) CreateRule(w http.ResponseWriter, r *http.Request) {
	rule, ok := decodeRule(w, r)
	if !ok {
		return
	}
	saved, err := h.feeService.CreateRule(r.Context(), rule)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewFeeRuleResponse(saved))
}

// UpdateRule godoc
//
//	@Summary	Replace a fee rule
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Rule id"
//	@Param		request	body		dto.FeeRuleRequestDTO	true	"Rule"
//	@Success	200		{object}	dto.FeeRuleResponseDTO	"Updated rule"
//	@Failure	400		{object}	utils.Response			"Invalid rule"
//	@Failure	404		{object}	utils.Response			"Rule not found"
//	@Router		/api/admin/fee-rules/{id} [put]
func (h *FeeHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	id, ok := ruleID(w, r)
	if !ok {
		return
	}
	rule, ok := decodeRule(w, r)
	if !ok {
		return
	}
	rule.ID = id

	saved, err := h.feeService.UpdateRule(r.Context(), rule)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFeeRuleResponse(saved))
}

// DeleteRule godoc
//
//	@Summary	Delete a fee rule
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Rule id"
//	@Success	204	"Deleted"
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	404	{object}	utils.Response	"Rule not found"
//	@Router		/api/admin/fee-rules/{id} [delete]
func (h *FeeHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	id, ok := ruleID(w, r)
	if !ok {
		return
	}
	if err := h.feeService.DeleteRule(r.Context(), id); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func ruleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid fee rule id")
		return 0, false
	}
	return id, true
}

func decodeRule(w http.ResponseWriter, r *http.Request) (*domain.FeeRule, bool) {
	var req dto.FeeRuleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	rule, err := req.ToDomain()
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return nil, false
	}
	return rule, true
}
