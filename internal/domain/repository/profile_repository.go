package repository

import (
	"context"

	"github.com/brainwise/posnext-api/internal/domain/entity"
)

// ProfilePaymentMethod is the joined projection of a profile's payment method
// row and its mode-of-payment definition. Type falls back to "Cash" when the
// referenced mode of payment carries none.
type ProfilePaymentMethod struct {
	ModeOfPayment  string `json:"mode_of_payment"`
	Default        bool   `json:"default"`
	AllowInReturns bool   `json:"allow_in_returns"`
	Type           string `json:"type"`
}

// ProfileRepository defines the interface for POS profile data access
type ProfileRepository interface {
	GetByName(ctx context.Context, name string) (*entity.POSProfile, error)
	// GetPaymentMethods returns the profile's payment methods joined to
	// their mode-of-payment definitions, ordered by declared idx.
	GetPaymentMethods(ctx context.Context, profile string) ([]ProfilePaymentMethod, error)
}

// SettingsRepository defines the interface for POS settings data access
type SettingsRepository interface {
	// GetEnabledByProfile returns the enabled settings record scoped to the
	// profile, or (nil, nil) when none exists.
	GetEnabledByProfile(ctx context.Context, profile string) (*entity.POSSettings, error)
	Upsert(ctx context.Context, settings *entity.POSSettings) error
}
