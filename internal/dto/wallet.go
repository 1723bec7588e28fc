package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/custody/internal/domain"
)

type WalletResponseDTO struct {
	ID            int64           `json:"id" example:"1"`
	UserID        string          `json:"user_id" example:"user-42"`
	Currency      string          `json:"currency" example:"BTC"`
	Address       string          `json:"address" example:"1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string" example:"0.5"`
	LockedBalance decimal.Decimal `json:"locked_balance" swaggertype:"string" example:"0.1"`
	CreatedAt     time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
	UpdatedAt     time.Time       `json:"updated_at" example:"2024-05-01T10:00:00Z"`
}

func NewWalletResponse(w *domain.WalletView) WalletResponseDTO {
	return WalletResponseDTO{
		ID:            w.ID,
		UserID:        w.UserID,
		Currency:      w.Currency.String(),
		Address:       w.Address,
		Balance:       w.Balance,
		LockedBalance: w.LockedBalance,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

type InitWalletResponseDTO struct {
	Currency string             `json:"currency" example:"ETH"`
	Wallet   *WalletResponseDTO `json:"wallet,omitempty"`
	Error    string             `json:"error,omitempty" example:""`
}

type RotateWalletRequestDTO struct {
	Reason string `json:"reason" example:"suspected key exposure"`
}

type RotationResponseDTO struct {
	Wallet     WalletResponseDTO `json:"wallet"`
	OldAddress string            `json:"old_address" example:"0x9858EfFD232B4033E47d90003D41EC34EcaEda94"`
	NewAddress string            `json:"new_address" example:"0x6Fac4D18c912343BF86fa7049364Dd4E424Ab9C0"`
	RotatedAt  time.Time         `json:"rotated_at" example:"2024-05-01T10:00:00Z"`
}

type RotationEntryDTO struct {
	OldAddress string    `json:"old_address" example:"0x9858EfFD232B4033E47d90003D41EC34EcaEda94"`
	Reason     string    `json:"reason" example:"scheduled"`
	RotatedAt  time.Time `json:"rotated_at" example:"2024-05-01T10:00:00Z"`
}

type CreditRequestDTO struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"1.25"`
	Reference string          `json:"reference" example:"deposit-tx-0001"`
}

type CreditResponseDTO struct {
	Wallet    WalletResponseDTO `json:"wallet"`
	Amount    decimal.Decimal   `json:"amount" swaggertype:"string" example:"1.25"`
	Fee       decimal.Decimal   `json:"fee" swaggertype:"string" example:"0"`
	NetAmount decimal.Decimal   `json:"net_amount" swaggertype:"string" example:"1.25"`
	Reference string            `json:"reference" example:"deposit-tx-0001"`
}

type KeyVerificationResponseDTO struct {
	WalletID       int64  `json:"wallet_id" example:"1"`
	Currency       string `json:"currency" example:"BTC"`
	Address        string `json:"address" example:"1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA"`
	DerivedAddress string `json:"derived_address" example:"1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA"`
	Match          bool   `json:"match" example:"true"`
}
