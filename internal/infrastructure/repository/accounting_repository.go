package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/repository"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new chart-of-accounts repository
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) GetByName(ctx context.Context, name string) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).First(&account, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// GetCurrency resolves the account currency, falling back to the owning
// company's default currency. A missing account is an error here: ledger
// posting must not guess.
func (r *accountRepository) GetCurrency(ctx context.Context, name string) (string, error) {
	var account entity.Account
	if err := r.db.WithContext(ctx).First(&account, "name = ?", name).Error; err != nil {
		return "", err
	}
	if account.AccountCurrency != "" {
		return account.AccountCurrency, nil
	}

	var company entity.Company
	if err := r.db.WithContext(ctx).First(&company, "name = ?", account.Company).Error; err != nil {
		return "", err
	}
	return company.DefaultCurrency, nil
}

type modeOfPaymentRepository struct {
	db *gorm.DB
}

// NewModeOfPaymentRepository creates a new mode-of-payment repository
func NewModeOfPaymentRepository(db *gorm.DB) repository.ModeOfPaymentRepository {
	return &modeOfPaymentRepository{db: db}
}

func (r *modeOfPaymentRepository) GetByName(ctx context.Context, name string) (*entity.ModeOfPayment, error) {
	var mode entity.ModeOfPayment
	err := r.db.WithContext(ctx).First(&mode, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mode, nil
}

func (r *modeOfPaymentRepository) IsWalletPayment(ctx context.Context, name string) (bool, error) {
	var mode entity.ModeOfPayment
	err := r.db.WithContext(ctx).Select("is_wallet_payment").First(&mode, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return mode.IsWalletPayment, nil
}

type accountsSettingsRepository struct {
	db *gorm.DB
}

// NewAccountsSettingsRepository creates a new accounts settings repository
func NewAccountsSettingsRepository(db *gorm.DB) repository.AccountsSettingsRepository {
	return &accountsSettingsRepository{db: db}
}

func (r *accountsSettingsRepository) Get(ctx context.Context) (*entity.AccountsSettings, error) {
	var settings entity.AccountsSettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *accountsSettingsRepository) Update(ctx context.Context, settings *entity.AccountsSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).First(&company, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByName(ctx context.Context, name string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}
