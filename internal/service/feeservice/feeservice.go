package feeservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/custody/internal/domain"
)

const (
	cacheNamespace = "fee_rule"
	cacheTTL       = 5 * time.Minute
)

var hundred = decimal.NewFromInt(100)

type RuleRepo interface {
	ListCandidates(ctx context.Context, feeType domain.FeeType, currency domain.Currency) ([]domain.FeeRule, error)
	Get(ctx context.Context, id int64) (*domain.FeeRule, error)
	List(ctx context.Context, filter domain.FeeRuleFilter) ([]domain.FeeRule, error)
	Create(ctx context.Context, rule *domain.FeeRule) (*domain.FeeRule, error)
	Update(ctx context.Context, rule *domain.FeeRule) (*domain.FeeRule, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type RevenueRepo interface {
	Record(ctx context.Context, entry *domain.RevenueEntry) (*domain.RevenueEntry, error)
}

type Cache interface {
	Get(ctx context.Context, namespace, key string, dest any) (bool, error)
	Set(ctx context.Context, namespace, key string, value any, ttl time.Duration) error
	DeleteNamespace(ctx context.Context, namespace string) error
}

type Service struct {
	rules   RuleRepo
	revenue RevenueRepo
	cache   Cache
}

// New builds the fee engine. cache may be nil, in which case every lookup
// goes to the database.
func New(rules RuleRepo, revenue RevenueRepo, cache Cache) *Service {
	return &Service{
		rules:   rules,
		revenue: revenue,
		cache:   cache,
	}
}

type cachedMatch struct {
	Rule *domain.FeeRule `json:"rule"`
}

// SelectRule picks the rule that governs currency among candidates: a rule
// naming the currency beats a currency-agnostic one, then higher priority
// wins, then the most recently created.
func SelectRule(candidates []domain.FeeRule, currency domain.Currency) *domain.FeeRule {
	var matching []domain.FeeRule
	for _, r := range candidates {
		if !r.Active {
			continue
		}
		if r.Currency != nil && *r.Currency != currency {
			continue
		}
		matching = append(matching, r)
	}
	if len(matching) == 0 {
		return nil
	}

	sort.SliceStable(matching, func(i, j int) bool {
		a, b := matching[i], matching[j]
		if (a.Currency != nil) != (b.Currency != nil) {
			return a.Currency != nil
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	rule := matching[0]
	return &rule
}

// ComputeFee prices amount under rule. A nil rule means no fee.
func ComputeFee(rule *domain.FeeRule, currency domain.Currency, amount decimal.Decimal) *domain.FeeResult {
	if rule == nil {
		return &domain.FeeResult{
			FeePercent: decimal.Zero,
			FlatFee:    decimal.Zero,
			TotalFee:   decimal.Zero,
			NetAmount:  amount,
		}
	}

	fee := amount.Mul(rule.FeePercent).Div(hundred).Add(rule.FlatFee)
	if fee.LessThan(rule.MinFee) {
		fee = rule.MinFee
	}
	if rule.MaxFee != nil && fee.GreaterThan(*rule.MaxFee) {
		fee = *rule.MaxFee
	}
	if fee.GreaterThan(amount) {
		fee = amount
	}
	fee = roundWithinBounds(rule, fee, currency.Precision())
	if fee.GreaterThan(amount) {
		fee = amount
	}
	if fee.IsNegative() {
		fee = decimal.Zero
	}

	ruleID := rule.ID
	return &domain.FeeResult{
		FeePercent:    rule.FeePercent,
		FlatFee:       rule.FlatFee,
		TotalFee:      fee,
		NetAmount:     amount.Sub(fee),
		AppliedRuleID: &ruleID,
	}
}

// roundWithinBounds rounds fee to the currency precision and keeps it inside
// the rule's bounds expressed at that precision: min rounds up, max rounds
// down. When no representable value fits between them the clamped fee is
// returned unrounded.
func roundWithinBounds(rule *domain.FeeRule, fee decimal.Decimal, precision int32) decimal.Decimal {
	lo := rule.MinFee.RoundCeil(precision)
	rounded := fee.Round(precision)
	if rounded.LessThan(lo) {
		rounded = lo
	}
	if rule.MaxFee != nil {
		hi := rule.MaxFee.RoundFloor(precision)
		if hi.LessThan(lo) {
			return fee
		}
		if rounded.GreaterThan(hi) {
			rounded = hi
		}
	}
	return rounded
}

func (s *Service) ResolveRule(ctx context.Context, feeType domain.FeeType, currency domain.Currency) (*domain.FeeRule, error) {
	key := fmt.Sprintf("match:%s:%s", feeType, currency)
	if s.cache != nil {
		var cached cachedMatch
		hit, err := s.cache.Get(ctx, cacheNamespace, key, &cached)
		if err != nil {
			zap.L().Warn("fee rule cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return cached.Rule, nil
		}
	}

	candidates, err := s.rules.ListCandidates(ctx, feeType, currency)
	if err != nil {
		zap.L().Error("failed to load fee rules", zap.String("fee_type", string(feeType)), zap.Stringer("currency", currency), zap.Error(err))
		return nil, err
	}
	rule := SelectRule(candidates, currency)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheNamespace, key, cachedMatch{Rule: rule}, cacheTTL); err != nil {
			zap.L().Warn("fee rule cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return rule, nil
}

func (s *Service) Calculate(ctx context.Context, feeType domain.FeeType, currency domain.Currency, amount decimal.Decimal) (*domain.FeeResult, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", domain.ErrInvalidAmount, amount)
	}
	if err := currency.Validate(); err != nil {
		return nil, err
	}
	rule, err := s.ResolveRule(ctx, feeType, currency)
	if err != nil {
		return nil, err
	}
	return ComputeFee(rule, currency, amount), nil
}

// RecordRevenue books the collected fee for source. Nothing is written for a
// zero fee.
func (s *Service) RecordRevenue(ctx context.Context, source domain.RevenueEntry, result *domain.FeeResult) error {
	if result == nil || !result.TotalFee.IsPositive() {
		return nil
	}
	source.Amount = result.TotalFee
	source.RuleID = result.AppliedRuleID
	if _, err := s.revenue.Record(ctx, &source); err != nil {
		zap.L().Error("failed to record fee revenue", zap.String("reference_id", source.ReferenceID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetRule(ctx context.Context, id int64) (*domain.FeeRule, error) {
	rule, err := s.rules.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, fmt.Errorf("%w: fee rule %d", domain.ErrNotFound, id)
	}
	return rule, nil
}

func (s *Service) ListRules(ctx context.Context, filter domain.FeeRuleFilter) ([]domain.FeeRule, error) {
	return s.rules.List(ctx, filter)
}

func (s *Service) CreateRule(ctx context.Context, rule *domain.FeeRule) (*domain.FeeRule, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}
	saved, err := s.rules.Create(ctx, rule)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return saved, nil
}

func (s *Service) UpdateRule(ctx context.Context, rule *domain.FeeRule) (*domain.FeeRule, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}
	saved, err := s.rules.Update(ctx, rule)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("%w: fee rule %d", domain.ErrNotFound, rule.ID)
	}
	s.invalidate(ctx)
	return saved, nil
}

func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	deleted, err := s.rules.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: fee rule %d", domain.ErrNotFound, id)
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteNamespace(ctx, cacheNamespace); err != nil {
		zap.L().Warn("fee rule cache invalidation failed", zap.Error(err))
	}
}

func validateRule(rule *domain.FeeRule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule is required", domain.ErrInvalidFeeRule)
	}
	if _, err := domain.ParseFeeType(string(rule.FeeType)); err != nil {
		return err
	}
	if rule.Currency != nil {
		if err := rule.Currency.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidFeeRule, err)
		}
	}
	switch {
	case rule.FeePercent.IsNegative(), rule.FlatFee.IsNegative(), rule.MinFee.IsNegative():
		return fmt.Errorf("%w: fee values must not be negative", domain.ErrInvalidFeeRule)
	case rule.FeePercent.GreaterThan(hundred):
		return fmt.Errorf("%w: fee percent must not exceed 100", domain.ErrInvalidFeeRule)
	case rule.MaxFee != nil && rule.MaxFee.LessThan(rule.MinFee):
		return fmt.Errorf("%w: max fee %s is below min fee %s", domain.ErrInvalidFeeRule, rule.MaxFee, rule.MinFee)
	}
	return nil
}
