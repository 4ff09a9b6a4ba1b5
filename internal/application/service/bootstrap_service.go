package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/pkg/apperror"
)

// DefaultLocale is used when the user has no stored language preference.
const DefaultLocale = "en"

// BootstrapService aggregates everything the POS frontend needs on startup
// into one response: locale, the current open shift, the shift's profile,
// settings and payment methods. Instead of several sequential calls the
// frontend fetches all initial data in one request.
type BootstrapService struct {
	userRepo     repository.UserRepository
	shiftRepo    repository.ShiftRepository
	profileRepo  repository.ProfileRepository
	settingsRepo repository.SettingsRepository
	companyRepo  repository.CompanyRepository
}

// NewBootstrapService creates a new bootstrap service
func NewBootstrapService(
	userRepo repository.UserRepository,
	shiftRepo repository.ShiftRepository,
	profileRepo repository.ProfileRepository,
	settingsRepo repository.SettingsRepository,
	companyRepo repository.CompanyRepository,
) *BootstrapService {
	return &BootstrapService{
		userRepo:     userRepo,
		shiftRepo:    shiftRepo,
		profileRepo:  profileRepo,
		settingsRepo: settingsRepo,
		companyRepo:  companyRepo,
	}
}

// ShiftSummary is the shift subset returned to the frontend
type ShiftSummary struct {
	Name            string `json:"name"`
	POSProfile      string `json:"pos_profile"`
	PeriodStartDate string `json:"period_start_date"`
	Status          string `json:"status"`
}

// ProfileSummary is the fixed POS profile projection returned to the frontend
type ProfileSummary struct {
	Name               string  `json:"name"`
	Company            string  `json:"company"`
	Currency           string  `json:"currency"`
	Warehouse          string  `json:"warehouse"`
	SellingPriceList   string  `json:"selling_price_list"`
	Customer           string  `json:"customer"`
	WriteOffAccount    string  `json:"write_off_account"`
	WriteOffCostCenter string  `json:"write_off_cost_center"`
	PrintFormat        *string `json:"print_format"`
	AutoPrint          bool    `json:"auto_print"`
	Country            string  `json:"country"`
}

// InitialData is the combined bootstrap response
type InitialData struct {
	Success        bool                              `json:"success"`
	Locale         string                            `json:"locale"`
	Shift          *ShiftSummary                     `json:"shift"`
	POSProfile     *ProfileSummary                   `json:"pos_profile"`
	POSSettings    entity.POSSettingsView            `json:"pos_settings"`
	PaymentMethods []repository.ProfilePaymentMethod `json:"payment_methods"`
}

// GetInitialData returns all initial data needed for POS application
// startup. Settings and payment-method lookups degrade to safe defaults
// rather than failing the whole response; a missing shift is not an error.
func (s *BootstrapService) GetInitialData(ctx context.Context, userID uuid.UUID) (*InitialData, error) {
	if userID == uuid.Nil {
		return nil, apperror.ErrAuthenticationRequired
	}

	locale, err := s.getUserLocale(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &InitialData{
		Success:        true,
		Locale:         locale,
		Shift:          nil,
		POSProfile:     nil,
		POSSettings:    entity.DefaultPOSSettings(),
		PaymentMethods: []repository.ProfilePaymentMethod{},
	}

	shift, err := s.shiftRepo.FindLatestOpen(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return result, nil
	}

	profile, err := s.profileRepo.GetByName(ctx, shift.POSProfile)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("POS Profile " + shift.POSProfile)
	}

	// The company record is loaded up front so a broken company link on the
	// profile surfaces here rather than further into the session.
	company, err := s.companyRepo.GetByName(ctx, profile.Company)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company " + profile.Company)
	}

	result.Shift = &ShiftSummary{
		Name:            shift.Name,
		POSProfile:      shift.POSProfile,
		PeriodStartDate: shift.PeriodStartDate.Format("2006-01-02 15:04:05"),
		Status:          shift.Status.String(),
	}
	result.POSProfile = projectProfile(profile)
	result.POSSettings = s.getPOSSettings(ctx, shift.POSProfile)
	result.PaymentMethods = s.getPaymentMethods(ctx, shift.POSProfile)

	return result, nil
}

// getUserLocale returns the lower-cased language preference for the user
func (s *BootstrapService) getUserLocale(ctx context.Context, userID uuid.UUID) (string, error) {
	language, err := s.userRepo.GetLanguage(ctx, userID)
	if err != nil {
		return "", err
	}
	if language == "" {
		language = DefaultLocale
	}
	return strings.ToLower(language), nil
}

// projectProfile produces the fixed profile field subset
func projectProfile(profile *entity.POSProfile) *ProfileSummary {
	if profile == nil {
		return nil
	}
	return &ProfileSummary{
		Name:               profile.Name,
		Company:            profile.Company,
		Currency:           profile.Currency,
		Warehouse:          profile.Warehouse,
		SellingPriceList:   profile.SellingPriceList,
		Customer:           profile.Customer,
		WriteOffAccount:    profile.WriteOffAccount,
		WriteOffCostCenter: profile.WriteOffCostCenter,
		PrintFormat:        profile.PrintFormat,
		AutoPrint:          profile.PrintReceiptOnOrderComplete,
		Country:            profile.Country,
	}
}

// getPOSSettings returns the stored settings for the profile, or the full
// default set when no profile is given, no record matches, or the lookup
// fails. A failed lookup is logged, never raised: bootstrap must not fail
// solely because settings could not be read.
func (s *BootstrapService) getPOSSettings(ctx context.Context, profile string) entity.POSSettingsView {
	if profile == "" {
		return entity.DefaultPOSSettings()
	}

	settings, err := s.settingsRepo.GetEnabledByProfile(ctx, profile)
	if err != nil {
		log.Printf("bootstrap: pos settings lookup failed for profile %s: %v", profile, err)
		return entity.DefaultPOSSettings()
	}
	if settings == nil {
		return entity.DefaultPOSSettings()
	}
	return settings.View()
}

// getPaymentMethods returns the profile's payment methods, or an empty
// sequence when no profile is given or the lookup fails (logged, not raised)
func (s *BootstrapService) getPaymentMethods(ctx context.Context, profile string) []repository.ProfilePaymentMethod {
	if profile == "" {
		return []repository.ProfilePaymentMethod{}
	}

	methods, err := s.profileRepo.GetPaymentMethods(ctx, profile)
	if err != nil {
		log.Printf("bootstrap: payment methods lookup failed for profile %s: %v", profile, err)
		return []repository.ProfilePaymentMethod{}
	}
	if methods == nil {
		methods = []repository.ProfilePaymentMethod{}
	}
	return methods
}
