package feerulerepo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/custody/internal/domain"
	"github.com/GlebRadaev/custody/internal/pg"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var ruleColumns = []string{
	"id", "fee_type", "currency", "fee_percent", "flat_fee", "min_fee", "max_fee", "priority", "active", "created_at", "updated_at",
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRule(row pgx.Row) (*domain.FeeRule, error) {
	var fr domain.FeeRule
	err := row.Scan(&fr.ID, &fr.FeeType, &fr.Currency, &fr.FeePercent, &fr.FlatFee, &fr.MinFee, &fr.MaxFee,
		&fr.Priority, &fr.Active, &fr.CreatedAt, &fr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) ([]domain.FeeRule, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch fee rules", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rules []domain.FeeRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			zap.L().Error("failed to scan fee rule row", zap.Error(err))
			return nil, err
		}
		rules = append(rules, *rule)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate fee rule rows", zap.Error(err))
		return nil, err
	}
	return rules, nil
}

// ListCandidates returns active rules of feeType that apply to currency,
// either specifically or as a currency-agnostic default.
func (r *Repository) ListCandidates(ctx context.Context, feeType domain.FeeType, currency domain.Currency) ([]domain.FeeRule, error) {
	query := `
		SELECT id, fee_type, currency, fee_percent, flat_fee, min_fee, max_fee, priority, active, created_at, updated_at
		FROM fee_rules
		WHERE fee_type = $1 AND active = TRUE AND (currency = $2 OR currency IS NULL)
	`
	return r.collect(ctx, query, feeType, currency)
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.FeeRule, error) {
	query := `
		SELECT id, fee_type, currency, fee_percent, flat_fee, min_fee, max_fee, priority, active, created_at, updated_at
		FROM fee_rules
		WHERE id = $1
	`
	rule, err := scanRule(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get fee rule", zap.Int64("rule_id", id), zap.Error(err))
		return nil, err
	}
	return rule, nil
}

func (r *Repository) List(ctx context.Context, filter domain.FeeRuleFilter) ([]domain.FeeRule, error) {
	builder := psql.Select(ruleColumns...).From("fee_rules")
	if filter.FeeType != nil {
		builder = builder.Where(sq.Eq{"fee_type": *filter.FeeType})
	}
	if filter.Currency != nil {
		builder = builder.Where(sq.Eq{"currency": *filter.Currency})
	}
	if filter.Active != nil {
		builder = builder.Where(sq.Eq{"active": *filter.Active})
	}
	query, args, err := builder.OrderBy("fee_type", "priority DESC", "id").ToSql()
	if err != nil {
		zap.L().Error("failed to build fee rule query", zap.Error(err))
		return nil, err
	}
	return r.collect(ctx, query, args...)
}

func (r *Repository) Create(ctx context.Context, rule *domain.FeeRule) (*domain.FeeRule, error) {
	query := `
		INSERT INTO fee_rules (fee_type, currency, fee_percent, flat_fee, min_fee, max_fee, priority, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, fee_type, currency, fee_percent, flat_fee, min_fee, max_fee, priority, active, created_at, updated_at
	`
	saved, err := scanRule(r.db.QueryRow(ctx, query,
		rule.FeeType, rule.Currency, rule.FeePercent, rule.FlatFee, rule.MinFee, rule.MaxFee, rule.Priority, rule.Active))
	if err != nil {
		zap.L().Error("can't save fee rule", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// Update replaces every mutable field of the rule. It returns nil when no
// rule has that id.
func (r *Repository) Update(ctx context.Context, rule *domain.FeeRule) (*domain.FeeRule, error) {
	query := `
		UPDATE fee_rules
		SET fee_type = $2, currency = $3, fee_percent = $4, flat_fee = $5, min_fee = $6, max_fee = $7,
		    priority = $8, active = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING id, fee_type, currency, fee_percent, flat_fee, min_fee, max_fee, priority, active, created_at, updated_at
	`
	saved, err := scanRule(r.db.QueryRow(ctx, query, rule.ID,
		rule.FeeType, rule.Currency, rule.FeePercent, rule.FlatFee, rule.MinFee, rule.MaxFee, rule.Priority, rule.Active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to update fee rule", zap.Int64("rule_id", rule.ID), zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM fee_rules WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to delete fee rule", zap.Int64("rule_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
