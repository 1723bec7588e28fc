package walletkeyrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

// Save stores the sealed key for a wallet, replacing any previous one. A nil
// RotatedAt keeps the recorded rotation time.
func (r *Repository) Save(ctx context.Context, key *domain.WalletKey) error {
	query := `
		INSERT INTO wallet_keys (wallet_id, encrypted_private_key, rotated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (wallet_id) DO UPDATE
		SET encrypted_private_key = EXCLUDED.encrypted_private_key,
		    rotated_at = COALESCE(EXCLUDED.rotated_at, wallet_keys.rotated_at)
	`
	_, err := r.db.Exec(ctx, query, key.WalletID, key.EncryptedPrivateKey, key.RotatedAt)
	if err != nil {
		zap.L().Error("can't save wallet key", zap.Int64("wallet_id", key.WalletID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, walletID int64) (*domain.WalletKey, error) {
	query := `
		SELECT wallet_id, encrypted_private_key, rotated_at
		FROM wallet_keys
		WHERE wallet_id = $1
	`
	var key domain.WalletKey
	err := r.db.QueryRow(ctx, query, walletID).Scan(&key.WalletID, &key.EncryptedPrivateKey, &key.RotatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet key", zap.Int64("wallet_id", walletID), zap.Error(err))
		return nil, err
	}
	return &key, nil
}
