package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/custody/internal/handlers/fees"
	"github.com/GlebRadaev/custody/internal/handlers/wallets"
	"github.com/GlebRadaev/custody/internal/handlers/withdrawals"
	"github.com/GlebRadaev/custody/internal/service"
	"github.com/GlebRadaev/custody/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		WalletService:     wallets.NewMockService(ctrl),
		WithdrawalService: withdrawals.NewMockService(ctrl),
		FeeService:        fees.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"), nil)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.WithdrawalHandler)
	assert.NotNil(t, h.FeeHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockFeeHandler := NewMockFeeHandler(ctrl)

	mockWalletHandler.EXPECT().GetWallets(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().InitializeWallets(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GenerateWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().RotateWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetRotationHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().VerifyWalletKey(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().CreditWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().Reject(gomock.Any(), gomock.Any()).AnyTimes()
	mockFeeHandler.EXPECT().Preview(gomock.Any(), gomock.Any()).AnyTimes()
	mockFeeHandler.EXPECT().ListRules(gomock.Any(), gomock.Any()).AnyTimes()
	mockFeeHandler.EXPECT().CreateRule(gomock.Any(), gomock.Any()).AnyTimes()
	mockFeeHandler.EXPECT().GetRule(gomock.Any(), gomock.Any()).AnyTimes()
	mockFeeHandler.EXPECT().UpdateRule(gomock.Any(), gomock.Any()).AnyTimes()
	mockFeeHandler.EXPECT().DeleteRule(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	userToken, _ := jwtService.GenerateJWT("user-1", auth.RoleUser, time.Now().Add(time.Hour))
	adminToken, _ := jwtService.GenerateJWT("admin-1", auth.RoleAdmin, time.Now().Add(time.Hour))

	h := &Handlers{
		WalletHandler:     mockWalletHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		FeeHandler:        mockFeeHandler,
		tokens:            jwtService,
		corsOrigins:       []string{"https://ops.example.com"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/api/wallets", "", http.StatusUnauthorized},
		{"GET", "/api/wallets", userToken, http.StatusOK},
		{"POST", "/api/wallets/init", userToken, http.StatusOK},
		{"POST", "/api/wallets/BTC", userToken, http.StatusOK},
		{"POST", "/api/withdrawals", userToken, http.StatusOK},
		{"GET", "/api/withdrawals", userToken, http.StatusOK},
		{"GET", "/api/fees/preview", userToken, http.StatusOK},
		{"GET", "/api/admin/withdrawals/pending", "", http.StatusUnauthorized},
		{"GET", "/api/admin/withdrawals/pending", userToken, http.StatusForbidden},
		{"GET", "/api/admin/withdrawals/pending", adminToken, http.StatusOK},
		{"POST", "/api/admin/withdrawals/7b1e4f2a-3c55-4d7e-9a1b-2f6c8d9e0a11/approve", adminToken, http.StatusOK},
		{"POST", "/api/admin/withdrawals/7b1e4f2a-3c55-4d7e-9a1b-2f6c8d9e0a11/reject", userToken, http.StatusForbidden},
		{"POST", "/api/admin/wallets/user-1/ETH/rotate", adminToken, http.StatusOK},
		{"GET", "/api/admin/wallets/user-1/ETH/rotations", adminToken, http.StatusOK},
		{"POST", "/api/admin/wallets/user-1/ETH/verify", adminToken, http.StatusOK},
		{"POST", "/api/admin/wallets/user-1/ETH/credit", adminToken, http.StatusOK},
		{"GET", "/api/admin/fee-rules", adminToken, http.StatusOK},
		{"POST", "/api/admin/fee-rules", adminToken, http.StatusOK},
		{"PUT", "/api/admin/fee-rules/3", adminToken, http.StatusOK},
		{"DELETE", "/api/admin/fee-rules/3", adminToken, http.StatusOK},
		{"GET", "/swagger/doc.json", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
