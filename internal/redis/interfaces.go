package redis

import (
	"context"

	"busriya/internal/domain"
)

// SessionStoreInterface defines the interface for session persistence.
type SessionStoreInterface interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Set(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}

// Ensure concrete types implement interfaces.
var _ SessionStoreInterface = (*SessionStore)(nil)
