package walletkeyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/custody/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	rotatedAt := time.Now()
	sealed := []byte{1, 2, 3, 4}
	query := regexp.QuoteMeta(`rotated_at = COALESCE(EXCLUDED.rotated_at, wallet_keys.rotated_at)`)

	tests := []struct {
		name        string
		key         *domain.WalletKey
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "First key",
			key:  &domain.WalletKey{WalletID: 1, EncryptedPrivateKey: sealed},
			prepareMock: func() {
				mock.ExpectExec(query).
					WithArgs(int64(1), sealed, (*time.Time)(nil)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Rotated key",
			key:  &domain.WalletKey{WalletID: 1, EncryptedPrivateKey: sealed, RotatedAt: &rotatedAt},
			prepareMock: func() {
				mock.ExpectExec(query).
					WithArgs(int64(1), sealed, &rotatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			key:  &domain.WalletKey{WalletID: 1, EncryptedPrivateKey: sealed},
			prepareMock: func() {
				mock.ExpectExec(query).
					WithArgs(int64(1), sealed, (*time.Time)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := repo.Save(context.Background(), tt.key)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	sealed := []byte{9, 8, 7}
	query := regexp.QuoteMeta(`SELECT wallet_id, encrypted_private_key, rotated_at FROM wallet_keys WHERE wallet_id = $1`)

	mock.ExpectQuery(query).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"wallet_id", "encrypted_private_key", "rotated_at"}).AddRow(int64(1), sealed, nil))
	mock.ExpectQuery(query).
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)

	key, err := repo.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, &domain.WalletKey{WalletID: 1, EncryptedPrivateKey: sealed}, key)

	key, err = repo.Get(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, key)
	assert.NoError(t, mock.ExpectationsWereMet())
}
