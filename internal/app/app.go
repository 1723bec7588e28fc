package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/custody/internal/config"
	"github.com/GlebRadaev/custody/internal/derivation"
	"github.com/GlebRadaev/custody/internal/handlers"
	"github.com/GlebRadaev/custody/internal/keyaudit"
	"github.com/GlebRadaev/custody/internal/pg"
	"github.com/GlebRadaev/custody/internal/repo"
	"github.com/GlebRadaev/custody/internal/service"
	"github.com/GlebRadaev/custody/internal/service/feeservice"
	"github.com/GlebRadaev/custody/internal/vault"
	"github.com/GlebRadaev/custody/pkg/auth"
	"github.com/GlebRadaev/custody/pkg/cache"
	"github.com/GlebRadaev/custody/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	audit *keyaudit.Service
	pool  *pgxpool.Pool
	cache *cache.Cache

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if missing := cfg.Substituted(); len(missing) > 0 {
		zap.L().Warn("running with development secrets, never use this setup with real funds", zap.Strings("missing", missing))
	}
	network, err := cfg.BTCParams()
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg, network)
	if err != nil {
		zap.L().Error("derivation engine init failed", zap.Error(err))
		return fmt.Errorf("can't init derivation engine: %w", err)
	}
	sealer, err := newVault(cfg)
	if err != nil {
		zap.L().Error("vault init failed", zap.Error(err))
		return fmt.Errorf("can't init vault: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, service.Deps{
		Engine:    engine,
		Vault:     sealer,
		Cache:     a.feeCache(ctx),
		TXManager: txManager,
		Network:   network,
	})
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), cfg.CORSOrigins)
	a.audit = keyaudit.New(cfg, a.repo.WalletBatches, a.srv.WalletService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.audit.Start(ctx)
	a.closeOnShutdown(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("btc_network", network.Name))
	return nil
}

func newEngine(cfg *config.Config, network *chaincfg.Params) (*derivation.Engine, error) {
	seed, err := derivation.SeedFromSecret(cfg.MasterSeed)
	if err != nil {
		return nil, err
	}
	defer clear(seed)
	return derivation.NewEngine(seed, network)
}

func newVault(cfg *config.Config) (*vault.Vault, error) {
	if cfg.EncryptionKey == "" && cfg.IsDevelopment() {
		return vault.New(vault.DevelopmentKey())
	}
	key, err := vault.KeyFromSecret(cfg.EncryptionKey)
	if err != nil {
		return nil, err
	}
	defer clear(key)
	return vault.New(key)
}

// feeCache returns nil when Redis is not configured or unreachable; fee
// rules are then read from postgres on every calculation.
func (a *Application) feeCache(ctx context.Context) feeservice.Cache {
	if a.cfg.RedisAddr == "" {
		return nil
	}
	c := cache.NewFromAddr(a.cfg.RedisAddr, a.cfg.RedisPassword)
	if err := c.Ping(ctx); err != nil {
		zap.L().Warn("redis unavailable, fee rule cache disabled", zap.String("addr", a.cfg.RedisAddr), zap.Error(err))
		_ = c.Close()
		return nil
	}
	a.cache = c
	return c
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) closeOnShutdown(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		if a.cache != nil {
			if err := a.cache.Close(); err != nil {
				zap.L().Error("failed to close redis client", zap.Error(err))
			}
		}
		a.pool.Close()
		zap.L().Info("storage connections closed")
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
