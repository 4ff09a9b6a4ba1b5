package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/pkg/pagination"
)

// ShiftRepository defines the interface for POS shift data access
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.POSOpeningShift) error
	GetByName(ctx context.Context, name string) (*entity.POSOpeningShift, error)
	// FindLatestOpen returns the user's most recent submitted shift that is
	// still Open and has no closing shift linked, ordered by period start
	// descending. Returns (nil, nil) when the user has no open shift.
	FindLatestOpen(ctx context.Context, userID uuid.UUID) (*entity.POSOpeningShift, error)
	// Close links the closing record to the opening shift and flips its
	// status in one transaction.
	Close(ctx context.Context, shift *entity.POSOpeningShift, closing *entity.POSClosingShift) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.POSOpeningShift, int64, error)
}
