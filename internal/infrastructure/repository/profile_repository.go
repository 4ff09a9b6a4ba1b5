package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/repository"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new POS profile repository
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByName(ctx context.Context, name string) (*entity.POSProfile, error) {
	var profile entity.POSProfile
	err := r.db.WithContext(ctx).First(&profile, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetPaymentMethods runs a single join instead of one lookup per method.
// The type falls back to "Cash" when the referenced mode of payment has no
// type or the reference is orphaned.
func (r *profileRepository) GetPaymentMethods(ctx context.Context, profile string) ([]repository.ProfilePaymentMethod, error) {
	var methods []repository.ProfilePaymentMethod
	err := r.db.WithContext(ctx).
		Table("pos_payment_methods").
		Select(`pos_payment_methods.mode_of_payment, pos_payment_methods."default", pos_payment_methods.allow_in_returns, COALESCE(NULLIF(modes_of_payment.type, ''), 'Cash') AS type`).
		Joins("LEFT JOIN modes_of_payment ON modes_of_payment.name = pos_payment_methods.mode_of_payment").
		Where("pos_payment_methods.parent = ?", profile).
		Order("pos_payment_methods.idx").
		Scan(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}
