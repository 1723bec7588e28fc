package withdrawalservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/custody/internal/domain"
	"github.com/GlebRadaev/custody/internal/pg"
	"github.com/GlebRadaev/custody/pkg/validate"
)

const resourceWithdrawal = "withdrawal"

type WalletRepo interface {
	GetForUpdate(ctx context.Context, userID string, currency domain.Currency) (*domain.Wallet, error)
	AdjustBalances(ctx context.Context, walletID int64, balanceDelta, lockedDelta decimal.Decimal) (*domain.Wallet, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	Complete(ctx context.Context, id uuid.UUID, adminID, txHash string, notes *string) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, id uuid.UUID, adminID, reason string) (*domain.WithdrawalRequest, error)
	ListPending(ctx context.Context) ([]domain.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)
}

type AuditRepo interface {
	Log(ctx context.Context, entry *domain.AuditEntry) error
}

type FeeService interface {
	Calculate(ctx context.Context, feeType domain.FeeType, currency domain.Currency, amount decimal.Decimal) (*domain.FeeResult, error)
	RecordRevenue(ctx context.Context, source domain.RevenueEntry, result *domain.FeeResult) error
}

type Service struct {
	wallets     WalletRepo
	withdrawals WithdrawalRepo
	audit       AuditRepo
	fees        FeeService
	txManager   pg.TXManager
	network     *chaincfg.Params
}

func New(wallets WalletRepo, withdrawals WithdrawalRepo, audit AuditRepo, fees FeeService, txManager pg.TXManager, network *chaincfg.Params) *Service {
	return &Service{
		wallets:     wallets,
		withdrawals: withdrawals,
		audit:       audit,
		fees:        fees,
		txManager:   txManager,
		network:     network,
	}
}

// CreateRequest files a withdrawal and moves amount from the spendable
// balance into the locked balance until an admin decides.
func (s *Service) CreateRequest(ctx context.Context, userID string, currency domain.Currency, amount decimal.Decimal, destination string) (*domain.WithdrawalRequest, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if err := currency.Validate(); err != nil {
		return nil, err
	}
	if err := currency.CheckAmount(amount); err != nil {
		return nil, err
	}
	destination = strings.TrimSpace(destination)
	if err := validate.Address(currency, destination, s.network); err != nil {
		return nil, err
	}

	var created *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetForUpdate(ctx, userID, currency)
		if err != nil {
			return err
		}
		if wallet == nil {
			return fmt.Errorf("%w: %s wallet for user %s", domain.ErrNotFound, currency, userID)
		}
		if wallet.Balance.LessThan(amount) {
			return fmt.Errorf("%w: %s available %s, requested %s",
				domain.ErrInsufficientBalance, currency, wallet.Balance, amount)
		}

		fee, err := s.fees.Calculate(ctx, domain.FeeTypeWithdrawal, currency, amount)
		if err != nil {
			return err
		}

		created, err = s.withdrawals.Create(ctx, &domain.WithdrawalRequest{
			ID:                 uuid.New(),
			UserID:             userID,
			Currency:           currency,
			Amount:             amount,
			Fee:                fee.TotalFee,
			NetAmount:          fee.NetAmount,
			DestinationAddress: destination,
			Status:             domain.WithdrawalStatusPending,
			RequestedAt:        time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		if _, err := s.wallets.AdjustBalances(ctx, wallet.ID, amount.Neg(), amount); err != nil {
			return err
		}
		return s.audit.Log(ctx, &domain.AuditEntry{
			UserID:       userID,
			Action:       domain.AuditWithdrawalRequest,
			ResourceType: resourceWithdrawal,
			ResourceID:   created.ID.String(),
			Details: map[string]any{
				"currency":    currency.String(),
				"amount":      amount.String(),
				"fee":         created.Fee.String(),
				"destination": destination,
			},
		})
	})
	if err != nil {
		zap.L().Error("failed to create withdrawal request", zap.String("user_id", userID), zap.Stringer("currency", currency), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// lockPending locks the request and its wallet. Anything but a pending
// request is ErrInvalidState.
func (s *Service) lockPending(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, *domain.Wallet, error) {
	req, err := s.withdrawals.GetForUpdate(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if req == nil {
		return nil, nil, fmt.Errorf("%w: withdrawal %s", domain.ErrNotFound, id)
	}
	if req.Status != domain.WithdrawalStatusPending {
		return nil, nil, fmt.Errorf("%w: withdrawal %s is %s", domain.ErrInvalidState, id, req.Status)
	}
	wallet, err := s.wallets.GetForUpdate(ctx, req.UserID, req.Currency)
	if err != nil {
		return nil, nil, err
	}
	if wallet == nil {
		return nil, nil, fmt.Errorf("%w: %s wallet for user %s", domain.ErrNotFound, req.Currency, req.UserID)
	}
	return req, wallet, nil
}

// Approve records that the funds were sent on chain and releases the lock.
func (s *Service) Approve(ctx context.Context, id uuid.UUID, adminID, txHash, notes string) (*domain.WithdrawalRequest, error) {
	txHash = strings.TrimSpace(txHash)
	if txHash == "" {
		return nil, fmt.Errorf("%w: transaction hash is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(adminID) == "" {
		return nil, fmt.Errorf("%w: admin id is required", domain.ErrInvalidInput)
	}
	var notesPtr *string
	if notes = strings.TrimSpace(notes); notes != "" {
		notesPtr = &notes
	}

	var completed *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, wallet, err := s.lockPending(ctx, id)
		if err != nil {
			return err
		}

		completed, err = s.withdrawals.Complete(ctx, id, adminID, txHash, notesPtr)
		if err != nil {
			return err
		}
		if _, err := s.wallets.AdjustBalances(ctx, wallet.ID, decimal.Zero, req.Amount.Neg()); err != nil {
			return err
		}
		if err := s.fees.RecordRevenue(ctx, domain.RevenueEntry{
			FeeType:     domain.FeeTypeWithdrawal,
			Currency:    req.Currency,
			UserID:      req.UserID,
			ReferenceID: id.String(),
		}, &domain.FeeResult{TotalFee: req.Fee, NetAmount: req.NetAmount}); err != nil {
			return err
		}
		return s.audit.Log(ctx, &domain.AuditEntry{
			UserID:       adminID,
			Action:       domain.AuditWithdrawalApproved,
			ResourceType: resourceWithdrawal,
			ResourceID:   id.String(),
			Details: map[string]any{
				"owner":       req.UserID,
				"currency":    req.Currency.String(),
				"amount":      req.Amount.String(),
				"destination": req.DestinationAddress,
				"tx_hash":     txHash,
			},
		})
	})
	if err != nil {
		zap.L().Error("failed to approve withdrawal", zap.Stringer("request_id", id), zap.String("admin_id", adminID), zap.Error(err))
		return nil, err
	}
	return completed, nil
}

// Reject returns the locked amount to the spendable balance.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, adminID, reason string) (*domain.WithdrawalRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(adminID) == "" {
		return nil, fmt.Errorf("%w: admin id is required", domain.ErrInvalidInput)
	}

	var rejected *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, wallet, err := s.lockPending(ctx, id)
		if err != nil {
			return err
		}

		rejected, err = s.withdrawals.Reject(ctx, id, adminID, reason)
		if err != nil {
			return err
		}
		if _, err := s.wallets.AdjustBalances(ctx, wallet.ID, req.Amount, req.Amount.Neg()); err != nil {
			return err
		}
		return s.audit.Log(ctx, &domain.AuditEntry{
			UserID:       adminID,
			Action:       domain.AuditWithdrawalRejected,
			ResourceType: resourceWithdrawal,
			ResourceID:   id.String(),
			Details: map[string]any{
				"owner":    req.UserID,
				"currency": req.Currency.String(),
				"amount":   req.Amount.String(),
				"reason":   reason,
			},
		})
	})
	if err != nil {
		zap.L().Error("failed to reject withdrawal", zap.Stringer("request_id", id), zap.String("admin_id", adminID), zap.Error(err))
		return nil, err
	}
	return rejected, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	return s.withdrawals.ListPending(ctx)
}

func (s *Service) ListUserRequests(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	return s.withdrawals.ListByUser(ctx, userID)
}
