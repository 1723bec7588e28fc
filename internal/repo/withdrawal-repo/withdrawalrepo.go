package withdrawalrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func scanRequest(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var wr domain.WithdrawalRequest
	err := row.Scan(
		&wr.ID, &wr.UserID, &wr.Currency, &wr.Amount, &wr.Fee, &wr.NetAmount, &wr.DestinationAddress,
		&wr.Status, &wr.TxHash, &wr.ApprovedBy, &wr.RequestedAt, &wr.ApprovedAt, &wr.CompletedAt, &wr.AdminNotes,
	)
	if err != nil {
		return nil, err
	}
	return &wr, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (id, user_id, currency, amount, fee, net_amount, destination_address, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, currency, amount, fee, net_amount, destination_address,
		          status, tx_hash, approved_by, requested_at, approved_at, completed_at, admin_notes
	`
	saved, err := scanRequest(r.db.QueryRow(ctx, query,
		req.ID, req.UserID, req.Currency, req.Amount, req.Fee, req.NetAmount, req.DestinationAddress, req.Status, req.RequestedAt))
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// GetForUpdate locks the request row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `
		SELECT id, user_id, currency, amount, fee, net_amount, destination_address,
		       status, tx_hash, approved_by, requested_at, approved_at, completed_at, admin_notes
		FROM withdrawal_requests
		WHERE id = $1
		FOR UPDATE
	`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock withdrawal request", zap.Stringer("request_id", id), zap.Error(err))
		return nil, err
	}
	return req, nil
}

// Complete moves a pending request to completed. A request that is no longer
// pending is reported as ErrInvalidState.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID, adminID, txHash string, notes *string) (*domain.WithdrawalRequest, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = 'completed', tx_hash = $2, approved_by = $3, approved_at = NOW(), completed_at = NOW(),
		    admin_notes = COALESCE($4, admin_notes)
		WHERE id = $1 AND status = 'pending'
		RETURNING id, user_id, currency, amount, fee, net_amount, destination_address,
		          status, tx_hash, approved_by, requested_at, approved_at, completed_at, admin_notes
	`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id, txHash, adminID, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: withdrawal %s is not pending", domain.ErrInvalidState, id)
		}
		zap.L().Error("failed to complete withdrawal request", zap.Stringer("request_id", id), zap.Error(err))
		return nil, err
	}
	return req, nil
}

// Reject moves a pending request to rejected and records the reason in
// admin_notes. approved_by holds the admin who decided.
func (r *Repository) Reject(ctx context.Context, id uuid.UUID, adminID, reason string) (*domain.WithdrawalRequest, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = 'rejected', approved_by = $2, approved_at = NOW(), admin_notes = $3
		WHERE id = $1 AND status = 'pending'
		RETURNING id, user_id, currency, amount, fee, net_amount, destination_address,
		          status, tx_hash, approved_by, requested_at, approved_at, completed_at, admin_notes
	`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id, adminID, reason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: withdrawal %s is not pending", domain.ErrInvalidState, id)
		}
		zap.L().Error("failed to reject withdrawal request", zap.Stringer("request_id", id), zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) ListPending(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	query := `
		SELECT id, user_id, currency, amount, fee, net_amount, destination_address,
		       status, tx_hash, approved_by, requested_at, approved_at, completed_at, admin_notes
		FROM withdrawal_requests
		WHERE status = 'pending'
		ORDER BY requested_at ASC
	`
	return r.list(ctx, query)
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	query := `
		SELECT id, user_id, currency, amount, fee, net_amount, destination_address,
		       status, tx_hash, approved_by, requested_at, approved_at, completed_at, admin_notes
		FROM withdrawal_requests
		WHERE user_id = $1
		ORDER BY requested_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate withdrawal request rows", zap.Error(err))
		return nil, err
	}
	return requests, nil
}
