// Package keyaudit periodically checks that every stored wallet key still
// decrypts and matches the key derived for the wallet's generation.
package keyaudit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/custody/internal/config"
	"github.com/GlebRadaev/custody/internal/domain"
)

const (
	defaultBatchSize = 500
	defaultWorkers   = 8
)

type WalletLister interface {
	ListBatch(ctx context.Context, afterID int64, limit int) ([]domain.Wallet, error)
}

type KeyVerifier interface {
	VerifyWalletKey(ctx context.Context, userID string, currency domain.Currency) (*domain.KeyVerification, error)
}

// Report summarises one sweep.
type Report struct {
	Checked    int64
	Mismatched int64
	Failed     int64
}

type Service struct {
	wallets    WalletLister
	verifier   KeyVerifier
	workerPool WorkerPoolI
	batchSize  int
	interval   time.Duration
	running    atomic.Bool
}

func New(cfg *config.Config, wallets WalletLister, verifier KeyVerifier) *Service {
	return &Service{
		wallets:    wallets,
		verifier:   verifier,
		workerPool: NewWorkerPool(defaultWorkers),
		batchSize:  defaultBatchSize,
		interval:   cfg.KeyAuditInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("key audit disabled")
		s.workerPool.Close()
		return
	}
	zap.L().Info("key audit started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("key audit stopped")
			return
		case <-ticker.C:
			report, err := s.Sweep(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				zap.L().Error("key audit sweep failed", zap.Error(err))
				continue
			}
			zap.L().Info("key audit sweep finished",
				zap.Int64("checked", report.Checked),
				zap.Int64("mismatched", report.Mismatched),
				zap.Int64("failed", report.Failed))
		}
	}
}

// Sweep verifies every wallet once. Overlapping sweeps are skipped.
func (s *Service) Sweep(ctx context.Context) (Report, error) {
	var report Report
	if !s.running.CompareAndSwap(false, true) {
		zap.L().Warn("key audit sweep already running")
		return report, nil
	}
	defer s.running.Store(false)

	var wg sync.WaitGroup

	var afterID int64
	for {
		batch, err := s.wallets.ListBatch(ctx, afterID, s.batchSize)
		if err != nil {
			wg.Wait()
			return report, err
		}
		for _, wallet := range batch {
			wallet := wallet
			wg.Add(1)
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				return s.check(ctx, wallet, &report)
			})
			if err != nil {
				wg.Done()
				wg.Wait()
				return report, err
			}
			afterID = wallet.ID
		}
		if len(batch) < s.batchSize {
			break
		}
	}
	wg.Wait()
	return report, nil
}

func (s *Service) check(ctx context.Context, wallet domain.Wallet, report *Report) error {
	atomic.AddInt64(&report.Checked, 1)
	result, err := s.verifier.VerifyWalletKey(ctx, wallet.UserID, wallet.Currency)
	if err != nil {
		atomic.AddInt64(&report.Failed, 1)
		return err
	}
	if !result.Match {
		atomic.AddInt64(&report.Mismatched, 1)
		zap.L().Error("wallet key does not match derived key",
			zap.Int64("wallet_id", wallet.ID),
			zap.String("user_id", wallet.UserID),
			zap.Stringer("currency", wallet.Currency),
			zap.String("address", result.Address),
			zap.String("derived_address", result.DerivedAddress))
	}
	return nil
}
