package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/brainwise/posnext-api/internal/domain/entity"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// GetLanguage returns the stored language preference, or "" when the
	// user has none set.
	GetLanguage(ctx context.Context, id uuid.UUID) (string, error)
}
