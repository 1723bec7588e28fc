package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	auditrepo "github.com/GlebRadaev/custody/internal/repo/audit-repo"
	feerulerepo "github.com/GlebRadaev/custody/internal/repo/feerule-repo"
	revenuerepo "github.com/GlebRadaev/custody/internal/repo/revenue-repo"
	walletrepo "github.com/GlebRadaev/custody/internal/repo/wallet-repo"
	walletkeyrepo "github.com/GlebRadaev/custody/internal/repo/walletkey-repo"
	withdrawalrepo "github.com/GlebRadaev/custody/internal/repo/withdrawal-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &walletrepo.Repository{}, repo.Wallets)
	assert.Same(t, repo.Wallets, repo.WalletBatches)
	assert.IsType(t, &walletkeyrepo.Repository{}, repo.Keys)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.Withdrawals)
	assert.IsType(t, &feerulerepo.Repository{}, repo.FeeRules)
	assert.IsType(t, &revenuerepo.Repository{}, repo.Revenue)
	assert.IsType(t, &auditrepo.Repository{}, repo.Audit)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
