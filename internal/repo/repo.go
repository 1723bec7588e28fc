package repo

import (
	"github.com/GlebRadaev/custody/internal/keyaudit"
	"github.com/GlebRadaev/custody/internal/pg"
	auditrepo "github.com/GlebRadaev/custody/internal/repo/audit-repo"
	feerulerepo "github.com/GlebRadaev/custody/internal/repo/feerule-repo"
	revenuerepo "github.com/GlebRadaev/custody/internal/repo/revenue-repo"
	walletrepo "github.com/GlebRadaev/custody/internal/repo/wallet-repo"
	walletkeyrepo "github.com/GlebRadaev/custody/internal/repo/walletkey-repo"
	withdrawalrepo "github.com/GlebRadaev/custody/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/custody/internal/service/feeservice"
	"github.com/GlebRadaev/custody/internal/service/walletservice"
	"github.com/GlebRadaev/custody/internal/service/withdrawalservice"
)

type Repositories struct {
	Wallets       walletservice.WalletRepo
	WalletBatches keyaudit.WalletLister
	Keys          walletservice.KeyRepo
	Withdrawals   withdrawalservice.WithdrawalRepo
	FeeRules      feeservice.RuleRepo
	Revenue       feeservice.RevenueRepo
	Audit         walletservice.AuditRepo
}

func New(conn pg.Database) *Repositories {
	wallets := walletrepo.New(conn)
	return &Repositories{
		Wallets:       wallets,
		WalletBatches: wallets,
		Keys:          walletkeyrepo.New(conn),
		Withdrawals:   withdrawalrepo.New(conn),
		FeeRules:      feerulerepo.New(conn),
		Revenue:       revenuerepo.New(conn),
		Audit:         auditrepo.New(conn),
	}
}
