package repository

import (
	"context"

	"github.com/brainwise/posnext-api/internal/domain/entity"
)

// AccountRepository defines the interface for chart-of-accounts lookups
type AccountRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Account, error)
	// GetCurrency returns the account's currency, falling back to the
	// owning company's default currency when the account has none set.
	GetCurrency(ctx context.Context, name string) (string, error)
}

// ModeOfPaymentRepository defines the interface for tender-type lookups
type ModeOfPaymentRepository interface {
	GetByName(ctx context.Context, name string) (*entity.ModeOfPayment, error)
	// IsWalletPayment reports whether the mode of payment is flagged as a
	// wallet payment. An unknown mode of payment is not a wallet payment.
	IsWalletPayment(ctx context.Context, name string) (bool, error)
}

// AccountsSettingsRepository provides access to the global accounting toggles
type AccountsSettingsRepository interface {
	Get(ctx context.Context) (*entity.AccountsSettings, error)
	Update(ctx context.Context, settings *entity.AccountsSettings) error
}

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Company, error)
}

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Customer, error)
}
