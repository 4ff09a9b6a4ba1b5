package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/enum"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/pkg/pagination"
)

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) repository.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *entity.POSOpeningShift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) GetByName(ctx context.Context, name string) (*entity.POSOpeningShift, error) {
	var shift entity.POSOpeningShift
	err := r.db.WithContext(ctx).First(&shift, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) FindLatestOpen(ctx context.Context, userID uuid.UUID) (*entity.POSOpeningShift, error) {
	var shift entity.POSOpeningShift
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("pos_closing_shift IS NULL").
		Where("doc_status = ?", enum.DocStatusSubmitted).
		Where("status = ?", enum.ShiftStatusOpen).
		Order("period_start_date DESC").
		First(&shift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) Close(ctx context.Context, shift *entity.POSOpeningShift, closing *entity.POSClosingShift) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(closing).Error; err != nil {
			return err
		}
		shift.POSClosingShift = &closing.Name
		shift.Status = enum.ShiftStatusClosed
		shift.PeriodEndDate = &closing.PeriodEndDate
		return tx.Save(shift).Error
	})
}

func (r *shiftRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.POSOpeningShift, int64, error) {
	var shifts []entity.POSOpeningShift
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.POSOpeningShift{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("period_start_date DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&shifts).Error
	if err != nil {
		return nil, 0, err
	}

	return shifts, total, nil
}
