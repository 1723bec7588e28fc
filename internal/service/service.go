package service

import (
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/GlebRadaev/custody/internal/handlers/fees"
	"github.com/GlebRadaev/custody/internal/handlers/wallets"
	"github.com/GlebRadaev/custody/internal/handlers/withdrawals"
	"github.com/GlebRadaev/custody/internal/pg"
	"github.com/GlebRadaev/custody/internal/repo"
	"github.com/GlebRadaev/custody/internal/service/feeservice"
	"github.com/GlebRadaev/custody/internal/service/walletservice"
	"github.com/GlebRadaev/custody/internal/service/withdrawalservice"
)

type Services struct {
	WalletService     wallets.Service
	WithdrawalService withdrawals.Service
	FeeService        fees.Service
}

// Deps carries what the services need besides repositories. Cache may be
// nil, in which case fee rules are read from the database every time.
type Deps struct {
	Engine    walletservice.Deriver
	Vault     walletservice.Sealer
	Cache     feeservice.Cache
	TXManager pg.TXManager
	Network   *chaincfg.Params
}

func New(repo *repo.Repositories, deps Deps) *Services {
	feeService := feeservice.New(repo.FeeRules, repo.Revenue, deps.Cache)
	walletService := walletservice.New(repo.Wallets, repo.Keys, repo.Audit, feeService, deps.Engine, deps.Vault, deps.TXManager)
	withdrawalService := withdrawalservice.New(repo.Wallets, repo.Withdrawals, repo.Audit, feeService, deps.TXManager, deps.Network)

	return &Services{
		WalletService:     walletService,
		WithdrawalService: withdrawalService,
		FeeService:        feeService,
	}
}
