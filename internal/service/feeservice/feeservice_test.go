package feeservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/custody/internal/domain"
	"github.com/GlebRadaev/custody/pkg/cache"
)

func NewMock(t *testing.T) (*Service, *MockRuleRepo, *MockRevenueRepo, *MockCache) {
	ctrl := gomock.NewController(t)
	rules := NewMockRuleRepo(ctrl)
	revenue := NewMockRevenueRepo(ctrl)
	c := NewMockCache(ctrl)
	return New(rules, revenue, c), rules, revenue, c
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func currencyPtr(c domain.Currency) *domain.Currency {
	return &c
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestSelectRule(t *testing.T) {
	now := time.Now()
	generic := domain.FeeRule{ID: 1, FeeType: domain.FeeTypeWithdrawal, Priority: 100, Active: true, CreatedAt: now}
	btcLow := domain.FeeRule{ID: 2, FeeType: domain.FeeTypeWithdrawal, Currency: currencyPtr(domain.CurrencyBTC), Priority: 1, Active: true, CreatedAt: now.Add(-time.Hour)}
	btcHigh := domain.FeeRule{ID: 3, FeeType: domain.FeeTypeWithdrawal, Currency: currencyPtr(domain.CurrencyBTC), Priority: 5, Active: true, CreatedAt: now.Add(-2 * time.Hour)}
	btcHighNewer := domain.FeeRule{ID: 4, FeeType: domain.FeeTypeWithdrawal, Currency: currencyPtr(domain.CurrencyBTC), Priority: 5, Active: true, CreatedAt: now}
	ethRule := domain.FeeRule{ID: 5, FeeType: domain.FeeTypeWithdrawal, Currency: currencyPtr(domain.CurrencyETH), Priority: 50, Active: true, CreatedAt: now}
	genericSamePriority := domain.FeeRule{ID: 7, FeeType: domain.FeeTypeWithdrawal, Priority: 5, Active: true, CreatedAt: now.Add(time.Hour)}
	inactive := domain.FeeRule{ID: 6, FeeType: domain.FeeTypeWithdrawal, Currency: currencyPtr(domain.CurrencyBTC), Priority: 99, Active: false, CreatedAt: now}

	tests := []struct {
		name       string
		candidates []domain.FeeRule
		currency   domain.Currency
		expectedID int64
		expectNil  bool
	}{
		{name: "Currency-specific beats higher priority default", candidates: []domain.FeeRule{generic, btcLow}, currency: domain.CurrencyBTC, expectedID: 2},
		{name: "Currency-specific beats default of equal priority", candidates: []domain.FeeRule{genericSamePriority, btcHigh}, currency: domain.CurrencyBTC, expectedID: 3},
		{name: "Higher priority among specific rules", candidates: []domain.FeeRule{btcLow, btcHigh, generic}, currency: domain.CurrencyBTC, expectedID: 3},
		{name: "Most recent on priority tie", candidates: []domain.FeeRule{btcHigh, btcHighNewer}, currency: domain.CurrencyBTC, expectedID: 4},
		{name: "Default when no specific rule", candidates: []domain.FeeRule{generic, ethRule}, currency: domain.CurrencyUSDT, expectedID: 1},
		{name: "Rules for other currencies ignored", candidates: []domain.FeeRule{ethRule}, currency: domain.CurrencyBTC, expectNil: true},
		{name: "Inactive rules ignored", candidates: []domain.FeeRule{inactive, generic}, currency: domain.CurrencyBTC, expectedID: 1},
		{name: "No candidates", candidates: nil, currency: domain.CurrencyBTC, expectNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := SelectRule(tt.candidates, tt.currency)
			if tt.expectNil {
				assert.Nil(t, rule)
				return
			}
			require.NotNil(t, rule)
			assert.Equal(t, tt.expectedID, rule.ID)
		})
	}
}

func TestComputeFee(t *testing.T) {
	tests := []struct {
		name     string
		rule     *domain.FeeRule
		currency domain.Currency
		amount   string
		fee      string
		net      string
	}{
		{
			name:     "No rule means no fee",
			currency: domain.CurrencyBTC,
			amount:   "1.5",
			fee:      "0",
			net:      "1.5",
		},
		{
			name:     "Percent plus flat",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("1"), FlatFee: dec("0.5"), MinFee: dec("0")},
			currency: domain.CurrencyETH,
			amount:   "100",
			fee:      "1.5",
			net:      "98.5",
		},
		{
			name:     "Raised to minimum",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("0.1"), FlatFee: dec("0"), MinFee: dec("0.0005")},
			currency: domain.CurrencyBTC,
			amount:   "0.01",
			fee:      "0.0005",
			net:      "0.0095",
		},
		{
			name:     "Clamped to maximum",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("2"), FlatFee: dec("0"), MinFee: dec("0"), MaxFee: decPtr("5")},
			currency: domain.CurrencyUSDT,
			amount:   "1000",
			fee:      "5",
			net:      "995",
		},
		{
			name:     "Never exceeds amount",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("0"), FlatFee: dec("10"), MinFee: dec("0")},
			currency: domain.CurrencyUSDT,
			amount:   "3",
			fee:      "3",
			net:      "0",
		},
		{
			name:     "Rounded to USDT precision",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("0.3333"), FlatFee: dec("0"), MinFee: dec("0")},
			currency: domain.CurrencyUSDT,
			amount:   "1.234567",
			fee:      "0.004115",
			net:      "1.230452",
		},
		{
			name:     "Rounded to BTC precision",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("0.123456789"), FlatFee: dec("0"), MinFee: dec("0")},
			currency: domain.CurrencyBTC,
			amount:   "1",
			fee:      "0.00123457",
			net:      "0.99876543",
		},
		{
			name:     "Minimum finer than USDT precision rounds up",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("0"), FlatFee: dec("0"), MinFee: dec("0.00000001")},
			currency: domain.CurrencyUSDT,
			amount:   "10",
			fee:      "0.000001",
			net:      "9.999999",
		},
		{
			name:     "Maximum finer than USDT precision rounds down",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("1"), FlatFee: dec("0"), MinFee: dec("0"), MaxFee: decPtr("0.0000015")},
			currency: domain.CurrencyUSDT,
			amount:   "10",
			fee:      "0.000001",
			net:      "9.999999",
		},
		{
			name:     "Rounded minimum still capped at amount",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("0"), FlatFee: dec("0"), MinFee: dec("0.0000005")},
			currency: domain.CurrencyUSDT,
			amount:   "0.000001",
			fee:      "0.000001",
			net:      "0",
		},
		{
			name:     "No representable fee between bounds keeps clamped value",
			rule:     &domain.FeeRule{ID: 1, FeePercent: dec("0"), FlatFee: dec("0"), MinFee: dec("0.0000002"), MaxFee: decPtr("0.0000008")},
			currency: domain.CurrencyUSDT,
			amount:   "10",
			fee:      "0.0000002",
			net:      "9.9999998",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeFee(tt.rule, tt.currency, dec(tt.amount))

			assert.True(t, result.TotalFee.Equal(dec(tt.fee)), "fee %s, want %s", result.TotalFee, tt.fee)
			assert.True(t, result.NetAmount.Equal(dec(tt.net)), "net %s, want %s", result.NetAmount, tt.net)
			assert.True(t, result.TotalFee.Add(result.NetAmount).Equal(dec(tt.amount)))
			assert.False(t, result.TotalFee.IsNegative())
			assert.False(t, result.TotalFee.GreaterThan(dec(tt.amount)))
			if tt.rule != nil && result.TotalFee.LessThan(dec(tt.amount)) {
				assert.False(t, result.TotalFee.LessThan(tt.rule.MinFee), "fee %s below min %s", result.TotalFee, tt.rule.MinFee)
			}
			if tt.rule != nil && tt.rule.MaxFee != nil {
				assert.False(t, result.TotalFee.GreaterThan(*tt.rule.MaxFee), "fee %s above max %s", result.TotalFee, tt.rule.MaxFee)
			}
			if tt.rule == nil {
				assert.Nil(t, result.AppliedRuleID)
			} else {
				require.NotNil(t, result.AppliedRuleID)
				assert.Equal(t, tt.rule.ID, *result.AppliedRuleID)
			}
		})
	}
}

func TestCalculate(t *testing.T) {
	service, rules, _, c := NewMock(t)
	rule := domain.FeeRule{ID: 7, FeeType: domain.FeeTypeWithdrawal, FeePercent: dec("1"), FlatFee: dec("0"), MinFee: dec("0"), Active: true}

	tests := []struct {
		name        string
		currency    domain.Currency
		amount      decimal.Decimal
		prepareMock func()
		err         error
		fee         string
	}{
		{
			name:     "Zero amount",
			currency: domain.CurrencyBTC,
			amount:   decimal.Zero,
			err:      domain.ErrInvalidAmount,
		},
		{
			name:     "Negative amount",
			currency: domain.CurrencyBTC,
			amount:   dec("-1"),
			err:      domain.ErrInvalidAmount,
		},
		{
			name:     "Unsupported currency",
			currency: domain.Currency("DOGE"),
			amount:   dec("1"),
			err:      domain.ErrUnsupportedCurrency,
		},
		{
			name:     "Cache miss loads and stores the rule",
			currency: domain.CurrencyETH,
			amount:   dec("40"),
			prepareMock: func() {
				c.EXPECT().Get(gomock.Any(), "fee_rule", "match:WITHDRAWAL:ETH", gomock.Any()).Return(false, nil)
				rules.EXPECT().ListCandidates(gomock.Any(), domain.FeeTypeWithdrawal, domain.CurrencyETH).Return([]domain.FeeRule{rule}, nil)
				c.EXPECT().Set(gomock.Any(), "fee_rule", "match:WITHDRAWAL:ETH", gomock.Any(), 5*time.Minute).Return(nil)
			},
			fee: "0.4",
		},
		{
			name:     "Cache hit skips the database",
			currency: domain.CurrencyETH,
			amount:   dec("40"),
			prepareMock: func() {
				c.EXPECT().Get(gomock.Any(), "fee_rule", "match:WITHDRAWAL:ETH", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, dest any) (bool, error) {
						r := rule
						dest.(*cachedMatch).Rule = &r
						return true, nil
					})
			},
			fee: "0.4",
		},
		{
			name:     "Cache failure falls back to the database",
			currency: domain.CurrencyETH,
			amount:   dec("40"),
			prepareMock: func() {
				c.EXPECT().Get(gomock.Any(), "fee_rule", "match:WITHDRAWAL:ETH", gomock.Any()).Return(false, errors.New("redis down"))
				rules.EXPECT().ListCandidates(gomock.Any(), domain.FeeTypeWithdrawal, domain.CurrencyETH).Return(nil, nil)
				c.EXPECT().Set(gomock.Any(), "fee_rule", "match:WITHDRAWAL:ETH", gomock.Any(), 5*time.Minute).Return(errors.New("redis down"))
			},
			fee: "0",
		},
		{
			name:     "Repository error",
			currency: domain.CurrencyETH,
			amount:   dec("40"),
			prepareMock: func() {
				c.EXPECT().Get(gomock.Any(), "fee_rule", "match:WITHDRAWAL:ETH", gomock.Any()).Return(false, nil)
				rules.EXPECT().ListCandidates(gomock.Any(), domain.FeeTypeWithdrawal, domain.CurrencyETH).Return(nil, errors.New("db error"))
			},
			err: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			result, err := service.Calculate(context.Background(), domain.FeeTypeWithdrawal, tt.currency, tt.amount)

			if tt.err != nil {
				assert.Error(t, err)
				if errors.Is(tt.err, domain.ErrInvalidAmount) || errors.Is(tt.err, domain.ErrUnsupportedCurrency) {
					assert.ErrorIs(t, err, tt.err)
				}
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.True(t, result.TotalFee.Equal(dec(tt.fee)), "fee %s, want %s", result.TotalFee, tt.fee)
		})
	}
}

func TestCalculate_RedisCache(t *testing.T) {
	srv := miniredis.RunT(t)
	redisCache := cache.New(redis.NewClient(&redis.Options{Addr: srv.Addr()}))

	ctrl := gomock.NewController(t)
	rules := NewMockRuleRepo(ctrl)
	service := New(rules, NewMockRevenueRepo(ctrl), redisCache)

	maxFee := dec("0.001")
	rule := domain.FeeRule{ID: 9, FeeType: domain.FeeTypeWithdrawal, Currency: currencyPtr(domain.CurrencyBTC),
		FeePercent: dec("0.5"), FlatFee: dec("0"), MinFee: dec("0"), MaxFee: &maxFee, Active: true}
	rules.EXPECT().ListCandidates(gomock.Any(), domain.FeeTypeWithdrawal, domain.CurrencyBTC).Return([]domain.FeeRule{rule}, nil).Times(1)

	first, err := service.Calculate(context.Background(), domain.FeeTypeWithdrawal, domain.CurrencyBTC, dec("1"))
	require.NoError(t, err)
	second, err := service.Calculate(context.Background(), domain.FeeTypeWithdrawal, domain.CurrencyBTC, dec("1"))
	require.NoError(t, err)

	assert.True(t, first.TotalFee.Equal(dec("0.001")))
	assert.True(t, second.TotalFee.Equal(first.TotalFee))
	assert.True(t, srv.Exists("fee_rule:match:WITHDRAWAL:BTC"))

	rules.EXPECT().Delete(gomock.Any(), int64(9)).Return(true, nil)
	require.NoError(t, service.DeleteRule(context.Background(), 9))
	assert.False(t, srv.Exists("fee_rule:match:WITHDRAWAL:BTC"))
}

func TestRecordRevenue(t *testing.T) {
	service, _, revenue, _ := NewMock(t)
	ruleID := int64(3)
	source := domain.RevenueEntry{
		FeeType:     domain.FeeTypeWithdrawal,
		Currency:    domain.CurrencyETH,
		UserID:      "user-1",
		ReferenceID: "req-1",
	}

	t.Run("Zero fee writes nothing", func(t *testing.T) {
		err := service.RecordRevenue(context.Background(), source, &domain.FeeResult{TotalFee: decimal.Zero})
		assert.NoError(t, err)
	})

	t.Run("Positive fee is booked", func(t *testing.T) {
		revenue.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *domain.RevenueEntry) (*domain.RevenueEntry, error) {
				assert.True(t, entry.Amount.Equal(dec("0.4")))
				assert.Equal(t, &ruleID, entry.RuleID)
				assert.Equal(t, "req-1", entry.ReferenceID)
				return entry, nil
			})

		err := service.RecordRevenue(context.Background(), source, &domain.FeeResult{TotalFee: dec("0.4"), AppliedRuleID: &ruleID})
		assert.NoError(t, err)
	})

	t.Run("Repository error", func(t *testing.T) {
		revenue.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		err := service.RecordRevenue(context.Background(), source, &domain.FeeResult{TotalFee: dec("0.4")})
		assert.Error(t, err)
	})
}

func TestRuleAdministration(t *testing.T) {
	service, rules, _, c := NewMock(t)
	valid := &domain.FeeRule{ID: 1, FeeType: domain.FeeTypeDeposit, FeePercent: dec("0.5"), FlatFee: dec("0"), MinFee: dec("0.1"), MaxFee: decPtr("1"), Active: true}

	tests := []struct {
		name        string
		call        func() error
		prepareMock func()
		err         error
	}{
		{
			name: "Create valid rule invalidates cache",
			call: func() error { _, err := service.CreateRule(context.Background(), valid); return err },
			prepareMock: func() {
				rules.EXPECT().Create(gomock.Any(), valid).Return(valid, nil)
				c.EXPECT().DeleteNamespace(gomock.Any(), "fee_rule").Return(nil)
			},
		},
		{
			name: "Negative flat fee",
			call: func() error {
				_, err := service.CreateRule(context.Background(), &domain.FeeRule{FeeType: domain.FeeTypeDeposit, FlatFee: dec("-1")})
				return err
			},
			err: domain.ErrInvalidFeeRule,
		},
		{
			name: "Percent above 100",
			call: func() error {
				_, err := service.CreateRule(context.Background(), &domain.FeeRule{FeeType: domain.FeeTypeDeposit, FeePercent: dec("100.01")})
				return err
			},
			err: domain.ErrInvalidFeeRule,
		},
		{
			name: "Max below min",
			call: func() error {
				_, err := service.CreateRule(context.Background(), &domain.FeeRule{FeeType: domain.FeeTypeDeposit, MinFee: dec("2"), MaxFee: decPtr("1")})
				return err
			},
			err: domain.ErrInvalidFeeRule,
		},
		{
			name: "Empty fee type",
			call: func() error {
				_, err := service.CreateRule(context.Background(), &domain.FeeRule{})
				return err
			},
			err: domain.ErrInvalidFeeRule,
		},
		{
			name: "Unknown currency",
			call: func() error {
				_, err := service.CreateRule(context.Background(), &domain.FeeRule{FeeType: domain.FeeTypeDeposit, Currency: currencyPtr("DOGE")})
				return err
			},
			err: domain.ErrInvalidFeeRule,
		},
		{
			name: "Update missing rule",
			call: func() error { _, err := service.UpdateRule(context.Background(), valid); return err },
			prepareMock: func() {
				rules.EXPECT().Update(gomock.Any(), valid).Return(nil, nil)
			},
			err: domain.ErrNotFound,
		},
		{
			name: "Update existing rule",
			call: func() error { _, err := service.UpdateRule(context.Background(), valid); return err },
			prepareMock: func() {
				rules.EXPECT().Update(gomock.Any(), valid).Return(valid, nil)
				c.EXPECT().DeleteNamespace(gomock.Any(), "fee_rule").Return(errors.New("redis down"))
			},
		},
		{
			name: "Delete missing rule",
			call: func() error { return service.DeleteRule(context.Background(), 42) },
			prepareMock: func() {
				rules.EXPECT().Delete(gomock.Any(), int64(42)).Return(false, nil)
			},
			err: domain.ErrNotFound,
		},
		{
			name: "Get missing rule",
			call: func() error { _, err := service.GetRule(context.Background(), 42); return err },
			prepareMock: func() {
				rules.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, nil)
			},
			err: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			err := tt.call()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
