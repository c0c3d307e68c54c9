package repositories

import (
	"context"

	"lps-admin/internal/adapters/persistence/models"
)

// SessionRepository defines session repository interface.
// GetByID returns domain.ErrSessionNotFound for missing or revoked rows.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Revoke(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
