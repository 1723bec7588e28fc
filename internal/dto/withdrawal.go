package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/custody/internal/domain"
)

type CreateWithdrawalRequestDTO struct {
	Currency    string          `json:"currency" example:"ETH"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"40"`
	Destination string          `json:"destination" example:"0x9858EfFD232B4033E47d90003D41EC34EcaEda94"`
}

type ApproveWithdrawalRequestDTO struct {
	TxHash string `json:"tx_hash" example:"0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"`
	Notes  string `json:"notes,omitempty" example:"sent from hot wallet"`
}

type RejectWithdrawalRequestDTO struct {
	Reason string `json:"reason" example:"destination flagged by compliance"`
}

type WithdrawalResponseDTO struct {
	ID                 string          `json:"id" example:"7b1e4f2a-3c55-4d7e-9a1b-2f6c8d9e0a11"`
	UserID             string          `json:"user_id" example:"user-42"`
	Currency           string          `json:"currency" example:"ETH"`
	Amount             decimal.Decimal `json:"amount" swaggertype:"string" example:"40"`
	Fee                decimal.Decimal `json:"fee" swaggertype:"string" example:"0.4"`
	NetAmount          decimal.Decimal `json:"net_amount" swaggertype:"string" example:"39.6"`
	DestinationAddress string          `json:"destination_address" example:"0x9858EfFD232B4033E47d90003D41EC34EcaEda94"`
	Status             string          `json:"status" example:"pending"`
	TxHash             *string         `json:"tx_hash,omitempty"`
	ApprovedBy         *string         `json:"approved_by,omitempty"`
	RequestedAt        time.Time       `json:"requested_at" example:"2024-05-01T10:00:00Z"`
	ApprovedAt         *time.Time      `json:"approved_at,omitempty"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	AdminNotes         *string         `json:"admin_notes,omitempty"`
}

func NewWithdrawalResponse(req *domain.WithdrawalRequest) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:                 req.ID.String(),
		UserID:             req.UserID,
		Currency:           req.Currency.String(),
		Amount:             req.Amount,
		Fee:                req.Fee,
		NetAmount:          req.NetAmount,
		DestinationAddress: req.DestinationAddress,
		Status:             string(req.Status),
		TxHash:             req.TxHash,
		ApprovedBy:         req.ApprovedBy,
		RequestedAt:        req.RequestedAt,
		ApprovedAt:         req.ApprovedAt,
		CompletedAt:        req.CompletedAt,
		AdminNotes:         req.AdminNotes,
	}
}

func NewWithdrawalList(reqs []domain.WithdrawalRequest) []WithdrawalResponseDTO {
	out := make([]WithdrawalResponseDTO, len(reqs))
	for i := range reqs {
		out[i] = NewWithdrawalResponse(&reqs[i])
	}
	return out
}
