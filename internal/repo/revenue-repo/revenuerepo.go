package revenuerepo

import (
	"context"

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

func (r *Repository) Record(ctx context.Context, entry *domain.RevenueEntry) (*domain.RevenueEntry, error) {
	query := `
		INSERT INTO revenue_ledger (fee_type, currency, user_id, reference_id, amount, rule_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.FeeType, entry.Currency, entry.UserID, entry.ReferenceID, entry.Amount, entry.RuleID).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save revenue entry",
			zap.String("reference_id", entry.ReferenceID), zap.Stringer("currency", entry.Currency), zap.Error(err))
		return nil, err
	}
	return entry, nil
}
