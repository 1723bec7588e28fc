package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/custody/internal/domain"
)

type FeePreviewResponseDTO struct {
	FeePercent    decimal.Decimal `json:"fee_percent" swaggertype:"string" example:"1"`
	FlatFee       decimal.Decimal `json:"flat_fee" swaggertype:"string" example:"0"`
	TotalFee      decimal.Decimal `json:"total_fee" swaggertype:"string" example:"0.4"`
	NetAmount     decimal.Decimal `json:"net_amount" swaggertype:"string" example:"39.6"`
	AppliedRuleID *int64          `json:"applied_rule_id,omitempty" example:"3"`
}

func NewFeePreview(res *domain.FeeResult) FeePreviewResponseDTO {
	return FeePreviewResponseDTO{
		FeePercent:    res.FeePercent,
		FlatFee:       res.FlatFee,
		TotalFee:      res.TotalFee,
		NetAmount:     res.NetAmount,
		AppliedRuleID: res.AppliedRuleID,
	}
}

// FeeRuleRequestDTO is the body of create and update. An empty currency
// makes the rule apply to every currency.
type FeeRuleRequestDTO struct {
	FeeType    string           `json:"fee_type" example:"WITHDRAWAL"`
	Currency   string           `json:"currency,omitempty" example:"BTC"`
	FeePercent decimal.Decimal  `json:"fee_percent" swaggertype:"string" example:"0.5"`
	FlatFee    decimal.Decimal  `json:"flat_fee" swaggertype:"string" example:"0.0001"`
	MinFee     decimal.Decimal  `json:"min_fee" swaggertype:"string" example:"0.0002"`
	MaxFee     *decimal.Decimal `json:"max_fee,omitempty" swaggertype:"string" example:"0.01"`
	Priority   int              `json:"priority" example:"10"`
	Active     *bool            `json:"active,omitempty" example:"true"`
}

// ToDomain parses the request. The returned rule has no id.
func (r FeeRuleRequestDTO) ToDomain() (*domain.FeeRule, error) {
	feeType, err := domain.ParseFeeType(r.FeeType)
	if err != nil {
		return nil, err
	}
	rule := &domain.FeeRule{
		FeeType:    feeType,
		FeePercent: r.FeePercent,
		FlatFee:    r.FlatFee,
		MinFee:     r.MinFee,
		MaxFee:     r.MaxFee,
		Priority:   r.Priority,
		Active:     r.Active == nil || *r.Active,
	}
	if r.Currency != "" {
		currency, err := domain.ParseCurrency(r.Currency)
		if err != nil {
			return nil, err
		}
		rule.Currency = &currency
	}
	return rule, nil
}

type FeeRuleResponseDTO struct {
	ID         int64            `json:"id" example:"3"`
	FeeType    string           `json:"fee_type" example:"WITHDRAWAL"`
	Currency   *string          `json:"currency,omitempty" example:"BTC"`
	FeePercent decimal.Decimal  `json:"fee_percent" swaggertype:"string" example:"0.5"`
	FlatFee    decimal.Decimal  `json:"flat_fee" swaggertype:"string" example:"0.0001"`
	MinFee     decimal.Decimal  `json:"min_fee" swaggertype:"string" example:"0.0002"`
	MaxFee     *decimal.Decimal `json:"max_fee,omitempty" swaggertype:"string" example:"0.01"`
	Priority   int              `json:"priority" example:"10"`
	Active     bool             `json:"active" example:"true"`
	CreatedAt  time.Time        `json:"created_at" example:"2024-05-01T10:00:00Z"`
	UpdatedAt  time.Time        `json:"updated_at" example:"2024-05-01T10:00:00Z"`
}

func NewFeeRuleResponse(rule *domain.FeeRule) FeeRuleResponseDTO {
	out := FeeRuleResponseDTO{
		ID:         rule.ID,
		FeeType:    string(rule.FeeType),
		FeePercent: rule.FeePercent,
		FlatFee:    rule.FlatFee,
		MinFee:     rule.MinFee,
		MaxFee:     rule.MaxFee,
		Priority:   rule.Priority,
		Active:     rule.Active,
		CreatedAt:  rule.CreatedAt,
		UpdatedAt:  rule.UpdatedAt,
	}
	if rule.Currency != nil {
		c := rule.Currency.String()
		out.Currency = &c
	}
	return out
}
