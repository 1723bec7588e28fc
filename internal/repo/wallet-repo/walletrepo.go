package walletrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/custody/internal/domain"
	"github.com/GlebRadaev/custody/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Currency, &w.Address, &w.Balance, &w.LockedBalance, &w.Generation, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetByUserAndCurrency(ctx context.Context, userID string, currency domain.Currency) (*domain.Wallet, error) {
	query := `
		SELECT id, user_id, currency, address, balance, locked_balance, generation, created_at, updated_at
		FROM wallets
		WHERE user_id = $1 AND currency = $2
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID, currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.String("user_id", userID), zap.Stringer("currency", currency), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetForUpdate locks the wallet row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, userID string, currency domain.Currency) (*domain.Wallet, error) {
	query := `
		SELECT id, user_id, currency, address, balance, locked_balance, generation, created_at, updated_at
		FROM wallets
		WHERE user_id = $1 AND currency = $2
		FOR UPDATE
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID, currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.String("user_id", userID), zap.Stringer("currency", currency), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	query := `
		SELECT id, user_id, currency, address, balance, locked_balance, generation, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		ORDER BY currency
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch wallets", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		wallet, err := scanWallet(rows)
		if err != nil {
			zap.L().Error("failed to scan wallet row", zap.Error(err))
			return nil, err
		}
		wallets = append(wallets, *wallet)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate wallet rows", zap.Error(err))
		return nil, err
	}
	return wallets, nil
}

// ListBatch pages through every wallet in id order starting after afterID.
func (r *Repository) ListBatch(ctx context.Context, afterID int64, limit int) ([]domain.Wallet, error) {
	query := `
		SELECT id, user_id, currency, address, balance, locked_balance, generation, created_at, updated_at
		FROM wallets
		WHERE id > $1
		ORDER BY id
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, afterID, limit)
	if err != nil {
		zap.L().Error("failed to fetch wallet batch", zap.Int64("after_id", afterID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	wallets := make([]domain.Wallet, 0, limit)
	for rows.Next() {
		wallet, err := scanWallet(rows)
		if err != nil {
			zap.L().Error("failed to scan wallet row", zap.Error(err))
			return nil, err
		}
		wallets = append(wallets, *wallet)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return wallets, nil
}

// Upsert inserts the wallet or, when the user already holds one in that
// currency, refreshes its address. Balances are never touched.
func (r *Repository) Upsert(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, currency, address, generation)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, currency) DO UPDATE
		SET address = EXCLUDED.address, generation = EXCLUDED.generation, updated_at = NOW()
		RETURNING id, user_id, currency, address, balance, locked_balance, generation, created_at, updated_at
	`
	saved, err := scanWallet(r.db.QueryRow(ctx, query, wallet.UserID, wallet.Currency, wallet.Address, wallet.Generation))
	if err != nil {
		zap.L().Error("can't save wallet", zap.String("user_id", wallet.UserID), zap.Stringer("currency", wallet.Currency), zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) UpdateAddress(ctx context.Context, walletID int64, address string, generation uint32) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET address = $2, generation = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, currency, address, balance, locked_balance, generation, created_at, updated_at
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, walletID, address, generation))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: wallet %d", domain.ErrNotFound, walletID)
		}
		zap.L().Error("failed to update wallet address", zap.Int64("wallet_id", walletID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// AdjustBalances applies both deltas atomically. The update is refused when
// either column would go negative.
func (r *Repository) AdjustBalances(ctx context.Context, walletID int64, balanceDelta, lockedDelta decimal.Decimal) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $2, locked_balance = locked_balance + $3, updated_at = NOW()
		WHERE id = $1 AND balance + $2 >= 0 AND locked_balance + $3 >= 0
		RETURNING id, user_id, currency, address, balance, locked_balance, generation, created_at, updated_at
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, walletID, balanceDelta, lockedDelta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: wallet %d cannot absorb balance %s / locked %s",
				domain.ErrInsufficientBalance, walletID, balanceDelta, lockedDelta)
		}
		zap.L().Error("failed to adjust wallet balances", zap.Int64("wallet_id", walletID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) AddRotation(ctx context.Context, entry *domain.RotationEntry) (*domain.RotationEntry, error) {
	query := `
		INSERT INTO wallet_rotation_history (wallet_id, old_address, reason, rotated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, entry.WalletID, entry.OldAddress, entry.Reason, entry.RotatedAt).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save rotation entry", zap.Int64("wallet_id", entry.WalletID), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListRotations(ctx context.Context, walletID int64, limit int) ([]domain.RotationEntry, error) {
	query := `
		SELECT id, wallet_id, old_address, reason, rotated_at
		FROM wallet_rotation_history
		WHERE wallet_id = $1
		ORDER BY rotated_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, walletID, limit)
	if err != nil {
		zap.L().Error("failed to fetch rotation history", zap.Int64("wallet_id", walletID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.RotationEntry
	for rows.Next() {
		var e domain.RotationEntry
		if err := rows.Scan(&e.ID, &e.WalletID, &e.OldAddress, &e.Reason, &e.RotatedAt); err != nil {
			zap.L().Error("failed to scan rotation row", zap.Error(err))
			return nil, err
		}
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate rotation rows", zap.Error(err))
		return nil, err
	}
	return history, nil
}
