package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new POS settings repository
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetEnabledByProfile(ctx context.Context, profile string) (*entity.POSSettings, error) {
	var settings entity.POSSettings
	err := r.db.WithContext(ctx).
		Where("pos_profile = ? AND enabled = ?", profile, true).
		First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *entity.POSSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
