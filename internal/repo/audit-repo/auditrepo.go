package auditrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

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

// Log appends an entry to the audit trail. Details are stored as JSONB.
func (r *Repository) Log(ctx context.Context, entry *domain.AuditEntry) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	query := `
		INSERT INTO audit_log (user_id, action, resource_type, resource_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.Exec(ctx, query, entry.UserID, entry.Action, entry.ResourceType, entry.ResourceID, payload, entry.Timestamp)
	if err != nil {
		zap.L().Error("can't save audit entry",
			zap.String("action", string(entry.Action)), zap.String("resource_id", entry.ResourceID), zap.Error(err))
		return err
	}
	return nil
}
