package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID            int64           `db:"id"`
	UserID        string          `db:"user_id"`
	Currency      Currency        `db:"currency"`
	Address       string          `db:"address"`
	Balance       decimal.Decimal `db:"balance"`
	LockedBalance decimal.Decimal `db:"locked_balance"`
	Generation    uint32          `db:"generation"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (w *Wallet) View() *WalletView {
	return &WalletView{
		ID:            w.ID,
		UserID:        w.UserID,
		Currency:      w.Currency,
		Address:       w.Address,
		Balance:       w.Balance,
		LockedBalance: w.LockedBalance,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

// WalletView is the public projection of a wallet. It never carries key material.
type WalletView struct {
	ID            int64
	UserID        string
	Currency      Currency
	Address       string
	Balance       decimal.Decimal
	LockedBalance decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type WalletKey struct {
	WalletID            int64      `db:"wallet_id"`
	EncryptedPrivateKey []byte     `db:"encrypted_private_key"`
	RotatedAt           *time.Time `db:"rotated_at"`
}

type RotationEntry struct {
	ID         int64     `db:"id"`
	WalletID   int64     `db:"wallet_id"`
	OldAddress string    `db:"old_address"`
	Reason     string    `db:"reason"`
	RotatedAt  time.Time `db:"rotated_at"`
}

type RotationResult struct {
	Wallet     *WalletView
	OldAddress string
	NewAddress string
	RotatedAt  time.Time
}

// InitResult is the outcome of generating one currency's wallet during
// initialization. Exactly one of Wallet and Err is set.
type InitResult struct {
	Currency Currency
	Wallet   *WalletView
	Err      error
}

type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

type WithdrawalRequest struct {
	ID                 uuid.UUID        `db:"id"`
	UserID             string           `db:"user_id"`
	Currency           Currency         `db:"currency"`
	Amount             decimal.Decimal  `db:"amount"`
	Fee                decimal.Decimal  `db:"fee"`
	NetAmount          decimal.Decimal  `db:"net_amount"`
	DestinationAddress string           `db:"destination_address"`
	Status             WithdrawalStatus `db:"status"`
	TxHash             *string          `db:"tx_hash"`
	ApprovedBy         *string          `db:"approved_by"`
	RequestedAt        time.Time        `db:"requested_at"`
	ApprovedAt         *time.Time       `db:"approved_at"`
	CompletedAt        *time.Time       `db:"completed_at"`
	AdminNotes         *string          `db:"admin_notes"`
}

type FeeType string

const (
	FeeTypeWithdrawal FeeType = "WITHDRAWAL"
	FeeTypeDeposit    FeeType = "DEPOSIT"
)

func ParseFeeType(s string) (FeeType, error) {
	ft := FeeType(strings.ToUpper(strings.TrimSpace(s)))
	switch ft {
	case FeeTypeWithdrawal, FeeTypeDeposit:
		return ft, nil
	default:
		return "", fmt.Errorf("%w: unknown fee type %q", ErrInvalidFeeRule, s)
	}
}

type FeeRule struct {
	ID         int64            `db:"id"`
	FeeType    FeeType          `db:"fee_type"`
	Currency   *Currency        `db:"currency"`
	FeePercent decimal.Decimal  `db:"fee_percent"`
	FlatFee    decimal.Decimal  `db:"flat_fee"`
	MinFee     decimal.Decimal  `db:"min_fee"`
	MaxFee     *decimal.Decimal `db:"max_fee"`
	Priority   int              `db:"priority"`
	Active     bool             `db:"active"`
	CreatedAt  time.Time        `db:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at"`
}

type FeeRuleFilter struct {
	FeeType  *FeeType
	Currency *Currency
	Active   *bool
}

type FeeResult struct {
	FeePercent    decimal.Decimal
	FlatFee       decimal.Decimal
	TotalFee      decimal.Decimal
	NetAmount     decimal.Decimal
	AppliedRuleID *int64
}

type RevenueEntry struct {
	ID          int64           `db:"id"`
	FeeType     FeeType         `db:"fee_type"`
	Currency    Currency        `db:"currency"`
	UserID      string          `db:"user_id"`
	ReferenceID string          `db:"reference_id"`
	Amount      decimal.Decimal `db:"amount"`
	RuleID      *int64          `db:"rule_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

type AuditAction string

const (
	AuditWalletGenerated     AuditAction = "WALLET_GENERATED"
	AuditWalletRotated       AuditAction = "WALLET_ROTATED"
	AuditWalletCredited      AuditAction = "WALLET_CREDITED"
	AuditWithdrawalRequest   AuditAction = "WITHDRAWAL_REQUEST"
	AuditWithdrawalApproved  AuditAction = "WITHDRAWAL_APPROVED"
	AuditWithdrawalRejected  AuditAction = "WITHDRAWAL_REJECTED"
	AuditKeyDecryptionFailed AuditAction = "KEY_DECRYPTION_FAILED"
)

type AuditEntry struct {
	UserID       string         `db:"user_id"`
	Action       AuditAction    `db:"action"`
	ResourceType string         `db:"resource_type"`
	ResourceID   string         `db:"resource_id"`
	Details      map[string]any `db:"details"`
	Timestamp    time.Time      `db:"timestamp"`
}

type CreditResult struct {
	Wallet    *WalletView
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	NetAmount decimal.Decimal
	Reference string
}

// KeyVerification reports whether a wallet's sealed key still opens and
// matches the key derived for its current generation.
type KeyVerification struct {
	WalletID       int64
	Currency       Currency
	Address        string
	DerivedAddress string
	Match          bool
}
