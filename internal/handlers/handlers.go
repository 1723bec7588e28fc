package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/custody/docs"
	feehandlers "github.com/GlebRadaev/custody/internal/handlers/fees"
	wallethandlers "github.com/GlebRadaev/custody/internal/handlers/wallets"
	withdrawalhandlers "github.com/GlebRadaev/custody/internal/handlers/withdrawals"
	"github.com/GlebRadaev/custody/internal/service"
	"github.com/GlebRadaev/custody/pkg/auth"
)

type WalletHandler interface {
	GenerateWallet(w http.ResponseWriter, r *http.Request)
	InitializeWallets(w http.ResponseWriter, r *http.Request)
	GetWallets(w http.ResponseWriter, r *http.Request)
	RotateWallet(w http.ResponseWriter, r *http.Request)
	GetRotationHistory(w http.ResponseWriter, r *http.Request)
	CreditWallet(w http.ResponseWriter, r *http.Request)
	VerifyWalletKey(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type FeeHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	ListRules(w http.ResponseWriter, r *http.Request)
	GetRule(w http.ResponseWriter, r *http.Request)
	CreateRule(w http.ResponseWriter, r *http.Request)
	UpdateRule(w http.ResponseWriter, r *http.Request)
	DeleteRule(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler     WalletHandler
	WithdrawalHandler WithdrawalHandler
	FeeHandler        FeeHandler

	tokens      auth.TokenValidator
	corsOrigins []string
}

func New(s *service.Services, tokens auth.TokenValidator, corsOrigins []string) *Handlers {
	return &Handlers{
		WalletHandler:     wallethandlers.New(s.WalletService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		FeeHandler:        feehandlers.New(s.FeeService),
		tokens:            tokens,
		corsOrigins:       corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if len(h.corsOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: h.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}).Handler)
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.tokens))

		r.Route("/wallets", func(r chi.Router) {
			r.Get("/", h.WalletHandler.GetWallets)
			r.Post("/init", h.WalletHandler.InitializeWallets)
			r.Post("/{currency}", h.WalletHandler.GenerateWallet)
		})
		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/", h.WithdrawalHandler.CreateWithdrawal)
			r.Get("/", h.WithdrawalHandler.GetWithdrawals)
		})
		r.Get("/fees/preview", h.FeeHandler.Preview)

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin))

			r.Route("/wallets/{userID}/{currency}", func(r chi.Router) {
				r.Post("/rotate", h.WalletHandler.RotateWallet)
				r.Get("/rotations", h.WalletHandler.GetRotationHistory)
				r.Post("/verify", h.WalletHandler.VerifyWalletKey)
				r.Post("/credit", h.WalletHandler.CreditWallet)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/pending", h.WithdrawalHandler.GetPending)
				r.Post("/{id}/approve", h.WithdrawalHandler.Approve)
				r.Post("/{id}/reject", h.WithdrawalHandler.Reject)
			})
			r.Route("/fee-rules", func(r chi.Router) {
				r.Get("/", h.FeeHandler.ListRules)
				r.Post("/", h.FeeHandler.CreateRule)
				r.Get("/{id}", h.FeeHandler.GetRule)
				r.Put("/{id}", h.FeeHandler.UpdateRule)
				r.Delete("/{id}", h.FeeHandler.DeleteRule)
			})
		})
	})

	return r
}
