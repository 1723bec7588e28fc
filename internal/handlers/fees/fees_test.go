package fees

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/custody/internal/domain"
	"github.com/GlebRadaev/custody/internal/dto"
)

func NewMock(t *testing.T) (*FeeHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPreview(t *testing.T) {
	handler, service := NewMock(t)
	ruleID := int64(3)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Withdrawal fee by default",
			query: "?currency=BTC&amount=1",
			prepareMock: func() {
				service.EXPECT().Calculate(gomock.Any(), domain.FeeTypeWithdrawal, domain.CurrencyBTC, decimal.RequireFromString("1")).
					Return(&domain.FeeResult{
						FeePercent:    decimal.RequireFromString("0.5"),
						FlatFee:       decimal.Zero,
						TotalFee:      decimal.RequireFromString("0.005"),
						NetAmount:     decimal.RequireFromString("0.995"),
						AppliedRuleID: &ruleID,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Deposit fee",
			query: "?type=deposit&currency=USDT&amount=10",
			prepareMock: func() {
				service.EXPECT().Calculate(gomock.Any(), domain.FeeTypeDeposit, domain.CurrencyUSDT, decimal.RequireFromString("10")).
					Return(&domain.FeeResult{TotalFee: decimal.Zero, NetAmount: decimal.RequireFromString("10")}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Unknown fee type",
			query:        "?type=TRANSFER&currency=BTC&amount=1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Amount not a number",
			query:        "?currency=BTC&amount=lots",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Non-positive amount",
			query: "?currency=BTC&amount=0",
			prepareMock: func() {
				service.EXPECT().Calculate(gomock.Any(), domain.FeeTypeWithdrawal, domain.CurrencyBTC, gomock.Any()).
					Return(nil, fmt.Errorf("%w: amount must be positive, got 0", domain.ErrInvalidAmount))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Missing currency",
			query:        "?amount=1",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Preview(w, newRequest(http.MethodGet, "/api/fees/preview"+tt.query, "", nil))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListRules(t *testing.T) {
	handler, service := NewMock(t)
	btc := domain.CurrencyBTC

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "All rules",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListRules(gomock.Any(), domain.FeeRuleFilter{}).
					Return([]domain.FeeRule{{ID: 1, FeeType: domain.FeeTypeWithdrawal}, {ID: 2, FeeType: domain.FeeTypeDeposit, Currency: &btc}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "Filtered",
			query: "?type=WITHDRAWAL&currency=btc&active=true",
			prepareMock: func() {
				service.EXPECT().ListRules(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter domain.FeeRuleFilter) ([]domain.FeeRule, error) {
						require.NotNil(t, filter.FeeType)
						require.NotNil(t, filter.Currency)
						require.NotNil(t, filter.Active)
						assert.Equal(t, domain.FeeTypeWithdrawal, *filter.FeeType)
						assert.Equal(t, domain.CurrencyBTC, *filter.Currency)
						assert.True(t, *filter.Active)
						return nil, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad active flag",
			query:        "?active=maybe",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().ListRules(gomock.Any(), domain.FeeRuleFilter{}).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.ListRules(w, newRequest(http.MethodGet, "/api/admin/fee-rules"+tt.query, "", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.FeeRuleResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestCreateRule(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Currency specific rule",
			body: `{"fee_type":"WITHDRAWAL","currency":"BTC","fee_percent":"0.5","flat_fee":"0.0001","min_fee":"0","max_fee":"0.01","priority":10}`,
			prepareMock: func() {
				service.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rule *domain.FeeRule) (*domain.FeeRule, error) {
						require.NotNil(t, rule.Currency)
						assert.Equal(t, domain.CurrencyBTC, *rule.Currency)
						assert.True(t, rule.FeePercent.Equal(decimal.RequireFromString("0.5")))
						require.NotNil(t, rule.MaxFee)
						assert.True(t, rule.MaxFee.Equal(decimal.RequireFromString("0.01")))
						assert.True(t, rule.Active)
						saved := *rule
						saved.ID = 7
						return &saved, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Rule for every currency, inactive",
			body: `{"fee_type":"deposit","fee_percent":"1","active":false}`,
			prepareMock: func() {
				service.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rule *domain.FeeRule) (*domain.FeeRule, error) {
						assert.Nil(t, rule.Currency)
						assert.Equal(t, domain.FeeTypeDeposit, rule.FeeType)
						assert.False(t, rule.Active)
						return rule, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Unknown fee type",
			body:         `{"fee_type":"TRANSFER","fee_percent":"1"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unknown currency",
			body:         `{"fee_type":"WITHDRAWAL","currency":"DOGE","fee_percent":"1"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Rejected by validation",
			body: `{"fee_type":"WITHDRAWAL","fee_percent":"-1"}`,
			prepareMock: func() {
				service.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: fee percent must be between 0 and 100", domain.ErrInvalidFeeRule))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateRule(w, newRequest(http.MethodPost, "/api/admin/fee-rules", tt.body, nil))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRuleByID(t *testing.T) {
	handler, service := NewMock(t)
	rule := &domain.FeeRule{ID: 5, FeeType: domain.FeeTypeWithdrawal, FeePercent: decimal.NewFromInt(1), Active: true}

	t.Run("Get", func(t *testing.T) {
		service.EXPECT().GetRule(gomock.Any(), int64(5)).Return(rule, nil)
		w := httptest.NewRecorder()
		handler.GetRule(w, newRequest(http.MethodGet, "/api/admin/fee-rules/5", "", map[string]string{"id": "5"}))

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.FeeRuleResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, int64(5), body.ID)
	})

	t.Run("Get missing", func(t *testing.T) {
		service.EXPECT().GetRule(gomock.Any(), int64(6)).Return(nil, fmt.Errorf("%w: fee rule 6", domain.ErrNotFound))
		w := httptest.NewRecorder()
		handler.GetRule(w, newRequest(http.MethodGet, "/api/admin/fee-rules/6", "", map[string]string{"id": "6"}))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Bad id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetRule(w, newRequest(http.MethodGet, "/api/admin/fee-rules/abc", "", map[string]string{"id": "abc"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Update sets id from path", func(t *testing.T) {
		service.EXPECT().UpdateRule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domain.FeeRule) (*domain.FeeRule, error) {
				assert.Equal(t, int64(5), r.ID)
				return r, nil
			})
		w := httptest.NewRecorder()
		handler.UpdateRule(w, newRequest(http.MethodPut, "/api/admin/fee-rules/5", `{"fee_type":"WITHDRAWAL","fee_percent":"2"}`, map[string]string{"id": "5"}))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		service.EXPECT().DeleteRule(gomock.Any(), int64(5)).Return(nil)
		w := httptest.NewRecorder()
		handler.DeleteRule(w, newRequest(http.MethodDelete, "/api/admin/fee-rules/5", "", map[string]string{"id": "5"}))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Delete missing", func(t *testing.T) {
		service.EXPECT().DeleteRule(gomock.Any(), int64(9)).Return(fmt.Errorf("%w: fee rule 9", domain.ErrNotFound))
		w := httptest.NewRecorder()
		handler.DeleteRule(w, newRequest(http.MethodDelete, "/api/admin/fee-rules/9", "", map[string]string{"id": "9"}))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
