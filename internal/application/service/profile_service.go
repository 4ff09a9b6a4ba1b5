package service

import (
	"context"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/pkg/apperror"
	"github.com/brainwise/posnext-api/pkg/utils"
)

// ProfileService exposes POS profile configuration: the profile document,
// its settings toggles and its payment methods
type ProfileService struct {
	profileRepo  repository.ProfileRepository
	settingsRepo repository.SettingsRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository, settingsRepo repository.SettingsRepository) *ProfileService {
	return &ProfileService{
		profileRepo:  profileRepo,
		settingsRepo: settingsRepo,
	}
}

// GetProfile returns a POS profile by name
func (s *ProfileService) GetProfile(ctx context.Context, name string) (*entity.POSProfile, error) {
	profile, err := s.profileRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("POS Profile " + name)
	}
	return profile, nil
}

// GetSettings returns the settings for a profile, defaulted when no enabled
// record exists
func (s *ProfileService) GetSettings(ctx context.Context, profileName string) (entity.POSSettingsView, error) {
	profile, err := s.profileRepo.GetByName(ctx, profileName)
	if err != nil {
		return entity.POSSettingsView{}, err
	}
	if profile == nil {
		return entity.POSSettingsView{}, apperror.NewNotFoundError("POS Profile " + profileName)
	}

	settings, err := s.settingsRepo.GetEnabledByProfile(ctx, profile.Name)
	if err != nil {
		return entity.POSSettingsView{}, err
	}
	if settings == nil {
		return entity.DefaultPOSSettings(), nil
	}
	return settings.View(), nil
}

// UpdateSettings stores the settings for a profile, creating the record when
// none exists yet. Stored settings are always enabled.
func (s *ProfileService) UpdateSettings(ctx context.Context, profileName string, view *entity.POSSettingsView) (entity.POSSettingsView, error) {
	profile, err := s.profileRepo.GetByName(ctx, profileName)
	if err != nil {
		return entity.POSSettingsView{}, err
	}
	if profile == nil {
		return entity.POSSettingsView{}, apperror.NewNotFoundError("POS Profile " + profileName)
	}

	settings, err := s.settingsRepo.GetEnabledByProfile(ctx, profile.Name)
	if err != nil {
		return entity.POSSettingsView{}, err
	}
	if settings == nil {
		settings = &entity.POSSettings{
			Name:       utils.GenerateDocName(utils.POSSettingsPrefix),
			POSProfile: profile.Name,
		}
	}

	settings.Enabled = true
	settings.TaxInclusive = view.TaxInclusive
	settings.AllowUserToEditAdditionalDiscount = view.AllowUserToEditAdditionalDiscount
	settings.AllowUserToEditItemDiscount = view.AllowUserToEditItemDiscount
	settings.UsePercentageDiscount = view.UsePercentageDiscount
	settings.MaxDiscountAllowed = view.MaxDiscountAllowed
	settings.DisableRoundedTotal = view.DisableRoundedTotal
	settings.AllowCreditSale = view.AllowCreditSale
	settings.AllowReturn = view.AllowReturn
	settings.AllowWriteOffChange = view.AllowWriteOffChange
	settings.AllowPartialPayment = view.AllowPartialPayment
	settings.UseExactAmount = view.UseExactAmount
	settings.DecimalPrecision = view.DecimalPrecision
	settings.AllowNegativeStock = view.AllowNegativeStock
	settings.EnableSalesPersons = view.EnableSalesPersons
	settings.SilentPrint = view.SilentPrint
	settings.AllowSalesOrder = view.AllowSalesOrder
	settings.AllowSelectSalesOrder = view.AllowSelectSalesOrder
	settings.CreateOnlySalesOrder = view.CreateOnlySalesOrder

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return entity.POSSettingsView{}, err
	}

	return settings.View(), nil
}

// GetPaymentMethods returns the profile's payment methods in declared order
func (s *ProfileService) GetPaymentMethods(ctx context.Context, profileName string) ([]repository.ProfilePaymentMethod, error) {
	profile, err := s.profileRepo.GetByName(ctx, profileName)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("POS Profile " + profileName)
	}

	methods, err := s.profileRepo.GetPaymentMethods(ctx, profile.Name)
	if err != nil {
		return nil, err
	}
	if methods == nil {
		methods = []repository.ProfilePaymentMethod{}
	}
	return methods, nil
}
