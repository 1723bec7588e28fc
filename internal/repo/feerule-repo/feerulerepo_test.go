package feerulerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/custody/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func btcRule(now time.Time) *domain.FeeRule {
	currency := domain.CurrencyBTC
	maxFee := decimal.NewFromFloat(0.01)
	return &domain.FeeRule{
		ID:         3,
		FeeType:    domain.FeeTypeWithdrawal,
		Currency:   &currency,
		FeePercent: decimal.NewFromFloat(0.5),
		FlatFee:    decimal.NewFromFloat(0.0001),
		MinFee:     decimal.NewFromFloat(0.0002),
		MaxFee:     &maxFee,
		Priority:   10,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func defaultRule(now time.Time) *domain.FeeRule {
	return &domain.FeeRule{
		ID:         1,
		FeeType:    domain.FeeTypeWithdrawal,
		FeePercent: decimal.NewFromInt(1),
		FlatFee:    decimal.Zero,
		MinFee:     decimal.Zero,
		Priority:   0,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func ruleRows(rules ...*domain.FeeRule) *pgxmock.Rows {
	rows := pgxmock.NewRows(ruleColumns)
	for _, r := range rules {
		var currency, maxFee any
		if r.Currency != nil {
			currency = r.Currency
		}
		if r.MaxFee != nil {
			maxFee = r.MaxFee
		}
		rows.AddRow(r.ID, r.FeeType, currency, r.FeePercent, r.FlatFee, r.MinFee, maxFee, r.Priority, r.Active, r.CreatedAt, r.UpdatedAt)
	}
	return rows
}

func TestRepository_ListCandidates(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE fee_type = $1 AND active = TRUE AND (currency = $2 OR currency IS NULL)`)).
		WithArgs(domain.FeeTypeWithdrawal, domain.CurrencyBTC).
		WillReturnRows(ruleRows(btcRule(now), defaultRule(now)))

	rules, err := repo.ListCandidates(context.Background(), domain.FeeTypeWithdrawal, domain.CurrencyBTC)

	assert.NoError(t, err)
	assert.Equal(t, []domain.FeeRule{*btcRule(now), *defaultRule(now)}, rules)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`FROM fee_rules WHERE id = $1`)

	tests := []struct {
		name        string
		id          int64
		prepareMock func()
		expectErr   bool
		result      *domain.FeeRule
	}{
		{
			name: "Rule found",
			id:   3,
			prepareMock: func() {
				mock.ExpectQuery(query).WithArgs(int64(3)).WillReturnRows(ruleRows(btcRule(now)))
			},
			result: btcRule(now),
		},
		{
			name: "Rule missing",
			id:   4,
			prepareMock: func() {
				mock.ExpectQuery(query).WithArgs(int64(4)).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   5,
			prepareMock: func() {
				mock.ExpectQuery(query).WithArgs(int64(5)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := repo.Get(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	feeType := domain.FeeTypeWithdrawal
	currency := domain.CurrencyBTC
	active := true

	tests := []struct {
		name        string
		filter      domain.FeeRuleFilter
		prepareMock func()
	}{
		{
			name:   "No filter",
			filter: domain.FeeRuleFilter{},
			prepareMock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, fee_type, currency, fee_percent, flat_fee, min_fee, max_fee, priority, active, created_at, updated_at FROM fee_rules ORDER BY fee_type, priority DESC, id`)).
					WithArgs().
					WillReturnRows(ruleRows(defaultRule(now), btcRule(now)))
			},
		},
		{
			name:   "All filters",
			filter: domain.FeeRuleFilter{FeeType: &feeType, Currency: &currency, Active: &active},
			prepareMock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM fee_rules WHERE fee_type = $1 AND currency = $2 AND active = $3 ORDER BY`)).
					WithArgs(feeType, currency, active).
					WillReturnRows(ruleRows(btcRule(now)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rules, err := repo.List(context.Background(), tt.filter)

			assert.NoError(t, err)
			assert.NotEmpty(t, rules)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateUpdateDelete(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	rule := btcRule(now)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO fee_rules (fee_type, currency, fee_percent, flat_fee, min_fee, max_fee, priority, active)`)).
		WithArgs(rule.FeeType, rule.Currency, rule.FeePercent, rule.FlatFee, rule.MinFee, rule.MaxFee, rule.Priority, rule.Active).
		WillReturnRows(ruleRows(rule))

	created, err := repo.Create(context.Background(), rule)
	assert.NoError(t, err)
	assert.Equal(t, rule, created)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE fee_rules SET fee_type = $2`)).
		WithArgs(rule.ID, rule.FeeType, rule.Currency, rule.FeePercent, rule.FlatFee, rule.MinFee, rule.MaxFee, rule.Priority, rule.Active).
		WillReturnError(pgx.ErrNoRows)

	updated, err := repo.Update(context.Background(), rule)
	assert.NoError(t, err)
	assert.Nil(t, updated)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM fee_rules WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM fee_rules WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 4)
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
