package walletservice

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/custody/internal/derivation"
	"github.com/GlebRadaev/custody/internal/domain"
	"github.com/GlebRadaev/custody/internal/pg"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	resourceWallet = "wallet"
)

type WalletRepo interface {
	GetByUserAndCurrency(ctx context.Context, userID string, currency domain.Currency) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, userID string, currency domain.Currency) (*domain.Wallet, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Wallet, error)
	Upsert(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	UpdateAddress(ctx context.Context, walletID int64, address string, generation uint32) (*domain.Wallet, error)
	AdjustBalances(ctx context.Context, walletID int64, balanceDelta, lockedDelta decimal.Decimal) (*domain.Wallet, error)
	AddRotation(ctx context.Context, entry *domain.RotationEntry) (*domain.RotationEntry, error)
	ListRotations(ctx context.Context, walletID int64, limit int) ([]domain.RotationEntry, error)
}

type KeyRepo interface {
	Save(ctx context.Context, key *domain.WalletKey) error
	Get(ctx context.Context, walletID int64) (*domain.WalletKey, error)
}

type AuditRepo interface {
	Log(ctx context.Context, entry *domain.AuditEntry) error
}

type Deriver interface {
	Derive(userID string, currency domain.Currency, generation uint32) (*derivation.Keypair, error)
}

type Sealer interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(blob []byte) ([]byte, error)
}

type FeeService interface {
	Calculate(ctx context.Context, feeType domain.FeeType, currency domain.Currency, amount decimal.Decimal) (*domain.FeeResult, error)
	RecordRevenue(ctx context.Context, source domain.RevenueEntry, result *domain.FeeResult) error
}

type Service struct {
	wallets   WalletRepo
	keys      KeyRepo
	audit     AuditRepo
	fees      FeeService
	engine    Deriver
	vault     Sealer
	txManager pg.TXManager
}

func New(wallets WalletRepo, keys KeyRepo, audit AuditRepo, fees FeeService, engine Deriver, vault Sealer, txManager pg.TXManager) *Service {
	return &Service{
		wallets:   wallets,
		keys:      keys,
		audit:     audit,
		fees:      fees,
		engine:    engine,
		vault:     vault,
		txManager: txManager,
	}
}

func validateOwner(userID string, currency domain.Currency) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	return currency.Validate()
}

// sealKey derives the key pair for generation and returns its address with
// the encrypted private key. The plaintext never leaves this function.
func (s *Service) sealKey(userID string, currency domain.Currency, generation uint32) (string, []byte, error) {
	kp, err := s.engine.Derive(userID, currency, generation)
	if err != nil {
		return "", nil, err
	}
	defer kp.Wipe()

	sealed, err := s.vault.Encrypt(kp.PrivateKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encrypt private key: %w", err)
	}
	return kp.Address, sealed, nil
}

// GenerateWallet creates the user's wallet in currency, or refreshes the
// address and sealed key of an existing one. Balances are kept.
func (s *Service) GenerateWallet(ctx context.Context, userID string, currency domain.Currency) (*domain.WalletView, error) {
	if err := validateOwner(userID, currency); err != nil {
		return nil, err
	}

	var view *domain.WalletView
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.wallets.GetForUpdate(ctx, userID, currency)
		if err != nil {
			return err
		}
		var generation uint32
		if existing != nil {
			generation = existing.Generation
		}

		address, sealed, err := s.sealKey(userID, currency, generation)
		if err != nil {
			return err
		}

		wallet, err := s.wallets.Upsert(ctx, &domain.Wallet{
			UserID:     userID,
			Currency:   currency,
			Address:    address,
			Generation: generation,
		})
		if err != nil {
			return err
		}
		if err := s.keys.Save(ctx, &domain.WalletKey{WalletID: wallet.ID, EncryptedPrivateKey: sealed}); err != nil {
			return err
		}
		if err := s.audit.Log(ctx, &domain.AuditEntry{
			UserID:       userID,
			Action:       domain.AuditWalletGenerated,
			ResourceType: resourceWallet,
			ResourceID:   strconv.FormatInt(wallet.ID, 10),
			Details:      map[string]any{"currency": currency.String(), "address": wallet.Address},
		}); err != nil {
			return err
		}
		view = wallet.View()
		return nil
	})
	if err != nil {
		zap.L().Error("failed to generate wallet", zap.String("user_id", userID), zap.Stringer("currency", currency), zap.Error(err))
		return nil, err
	}
	return view, nil
}

// InitializeAllWallets generates a wallet for every supported currency. Each
// currency succeeds or fails on its own.
func (s *Service) InitializeAllWallets(ctx context.Context, userID string) []domain.InitResult {
	currencies := domain.SupportedCurrencies()
	results := make([]domain.InitResult, len(currencies))

	var g errgroup.Group
	for i, currency := range currencies {
		i, currency := i, currency
		g.Go(func() error {
			view, err := s.GenerateWallet(ctx, userID, currency)
			results[i] = domain.InitResult{Currency: currency, Wallet: view, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Service) RotateWallet(ctx context.Context, userID string, currency domain.Currency, adminID, reason string) (*domain.RotationResult, error) {
	if err := validateOwner(userID, currency); err != nil {
		return nil, err
	}
	if strings.TrimSpace(adminID) == "" {
		return nil, fmt.Errorf("%w: admin id is required", domain.ErrInvalidInput)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rotation reason is required", domain.ErrInvalidInput)
	}

	var result *domain.RotationResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetForUpdate(ctx, userID, currency)
		if err != nil {
			return err
		}
		if wallet == nil {
			return fmt.Errorf("%w: %s wallet for user %s", domain.ErrNotFound, currency, userID)
		}

		generation := wallet.Generation + 1
		address, sealed, err := s.sealKey(userID, currency, generation)
		if err != nil {
			return err
		}

		rotatedAt := time.Now().UTC()
		if _, err := s.wallets.AddRotation(ctx, &domain.RotationEntry{
			WalletID:   wallet.ID,
			OldAddress: wallet.Address,
			Reason:     reason,
			RotatedAt:  rotatedAt,
		}); err != nil {
			return err
		}
		if err := s.keys.Save(ctx, &domain.WalletKey{WalletID: wallet.ID, EncryptedPrivateKey: sealed, RotatedAt: &rotatedAt}); err != nil {
			return err
		}
		updated, err := s.wallets.UpdateAddress(ctx, wallet.ID, address, generation)
		if err != nil {
			return err
		}
		if err := s.audit.Log(ctx, &domain.AuditEntry{
			UserID:       adminID,
			Action:       domain.AuditWalletRotated,
			ResourceType: resourceWallet,
			ResourceID:   strconv.FormatInt(wallet.ID, 10),
			Details: map[string]any{
				"owner":       userID,
				"currency":    currency.String(),
				"old_address": wallet.Address,
				"new_address": updated.Address,
				"reason":      reason,
			},
		}); err != nil {
			return err
		}

		result = &domain.RotationResult{
			Wallet:     updated.View(),
			OldAddress: wallet.Address,
			NewAddress: updated.Address,
			RotatedAt:  rotatedAt,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to rotate wallet", zap.String("user_id", userID), zap.String("admin_id", adminID), zap.Stringer("currency", currency), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// ClampHistoryLimit maps a requested page size onto [1, MaxHistoryLimit].
// Zero or negative selects the default.
func ClampHistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}

func (s *Service) GetRotationHistory(ctx context.Context, userID string, currency domain.Currency, limit int) ([]domain.RotationEntry, error) {
	if err := validateOwner(userID, currency); err != nil {
		return nil, err
	}
	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("%w: %s wallet for user %s", domain.ErrNotFound, currency, userID)
	}
	return s.wallets.ListRotations(ctx, wallet.ID, ClampHistoryLimit(limit))
}

func (s *Service) ListWallets(ctx context.Context, userID string) ([]*domain.WalletView, error) {
	wallets, err := s.wallets.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list wallets", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	views := make([]*domain.WalletView, 0, len(wallets))
	for i := range wallets {
		views = append(views, wallets[i].View())
	}
	return views, nil
}

// Credit books an externally settled deposit. The deposit fee is withheld
// and the net amount is added to the spendable balance.
func (s *Service) Credit(ctx context.Context, userID string, currency domain.Currency, adminID string, amount decimal.Decimal, reference string) (*domain.CreditResult, error) {
	if err := validateOwner(userID, currency); err != nil {
		return nil, err
	}
	if strings.TrimSpace(adminID) == "" {
		return nil, fmt.Errorf("%w: admin id is required", domain.ErrInvalidInput)
	}
	if err := currency.CheckAmount(amount); err != nil {
		return nil, err
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: settlement reference is required", domain.ErrInvalidInput)
	}

	var result *domain.CreditResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetForUpdate(ctx, userID, currency)
		if err != nil {
			return err
		}
		if wallet == nil {
			return fmt.Errorf("%w: %s wallet for user %s", domain.ErrNotFound, currency, userID)
		}

		fee, err := s.fees.Calculate(ctx, domain.FeeTypeDeposit, currency, amount)
		if err != nil {
			return err
		}
		updated, err := s.wallets.AdjustBalances(ctx, wallet.ID, fee.NetAmount, decimal.Zero)
		if err != nil {
			return err
		}
		if err := s.fees.RecordRevenue(ctx, domain.RevenueEntry{
			FeeType:     domain.FeeTypeDeposit,
			Currency:    currency,
			UserID:      userID,
			ReferenceID: reference,
		}, fee); err != nil {
			return err
		}
		if err := s.audit.Log(ctx, &domain.AuditEntry{
			UserID:       adminID,
			Action:       domain.AuditWalletCredited,
			ResourceType: resourceWallet,
			ResourceID:   strconv.FormatInt(wallet.ID, 10),
			Details: map[string]any{
				"owner":      userID,
				"currency":   currency.String(),
				"amount":     amount.String(),
				"fee":        fee.TotalFee.String(),
				"net_amount": fee.NetAmount.String(),
				"reference":  reference,
			},
		}); err != nil {
			return err
		}

		result = &domain.CreditResult{
			Wallet:    updated.View(),
			Amount:    amount,
			Fee:       fee.TotalFee,
			NetAmount: fee.NetAmount,
			Reference: reference,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.String("user_id", userID), zap.String("admin_id", adminID), zap.Stringer("currency", currency), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// VerifyWalletKey opens the sealed key and checks it against the key derived
// for the wallet's current generation. A key that no longer decrypts is
// recorded in the audit trail.
func (s *Service) VerifyWalletKey(ctx context.Context, userID string, currency domain.Currency) (*domain.KeyVerification, error) {
	if err := validateOwner(userID, currency); err != nil {
		return nil, err
	}
	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("%w: %s wallet for user %s", domain.ErrNotFound, currency, userID)
	}
	key, err := s.keys.Get(ctx, wallet.ID)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, fmt.Errorf("%w: key for wallet %d", domain.ErrNotFound, wallet.ID)
	}

	plaintext, err := s.vault.Decrypt(key.EncryptedPrivateKey)
	if err != nil {
		if errors.Is(err, domain.ErrDecryption) {
			zap.L().Error("wallet key failed to decrypt", zap.Int64("wallet_id", wallet.ID), zap.Stringer("currency", currency))
			if auditErr := s.audit.Log(ctx, &domain.AuditEntry{
				UserID:       userID,
				Action:       domain.AuditKeyDecryptionFailed,
				ResourceType: resourceWallet,
				ResourceID:   strconv.FormatInt(wallet.ID, 10),
				Details:      map[string]any{"currency": currency.String()},
			}); auditErr != nil {
				zap.L().Error("failed to audit decryption failure", zap.Int64("wallet_id", wallet.ID), zap.Error(auditErr))
			}
		}
		return nil, err
	}
	defer clear(plaintext)

	kp, err := s.engine.Derive(userID, currency, wallet.Generation)
	if err != nil {
		return nil, err
	}
	defer kp.Wipe()

	return &domain.KeyVerification{
		WalletID:       wallet.ID,
		Currency:       currency,
		Address:        wallet.Address,
		DerivedAddress: kp.Address,
		Match:          kp.Address == wallet.Address && subtle.ConstantTimeCompare(plaintext, kp.PrivateKey) == 1,
	}, nil
}
