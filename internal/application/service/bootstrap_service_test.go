package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/enum"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/pkg/apperror"
	"github.com/brainwise/posnext-api/pkg/pagination"
)

type mockUserRepo struct {
	languages map[uuid.UUID]string
	err       error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, nil
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (m *mockUserRepo) GetLanguage(ctx context.Context, id uuid.UUID) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.languages[id], nil
}

type mockShiftRepo struct {
	openShift *entity.POSOpeningShift
	created   *entity.POSOpeningShift
	closed    *entity.POSClosingShift
	err       error
}

func (m *mockShiftRepo) Create(ctx context.Context, shift *entity.POSOpeningShift) error {
	if m.err != nil {
		return m.err
	}
	m.created = shift
	return nil
}
func (m *mockShiftRepo) GetByName(ctx context.Context, name string) (*entity.POSOpeningShift, error) {
	if m.openShift != nil && m.openShift.Name == name {
		return m.openShift, nil
	}
	return nil, nil
}
func (m *mockShiftRepo) FindLatestOpen(ctx context.Context, userID uuid.UUID) (*entity.POSOpeningShift, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.openShift == nil || m.openShift.UserID != userID {
		return nil, nil
	}
	return m.openShift, nil
}
func (m *mockShiftRepo) Close(ctx context.Context, shift *entity.POSOpeningShift, closing *entity.POSClosingShift) error {
	if m.err != nil {
		return m.err
	}
	shift.Status = enum.ShiftStatusClosed
	shift.POSClosingShift = &closing.Name
	m.closed = closing
	return nil
}
func (m *mockShiftRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.POSOpeningShift, int64, error) {
	return nil, 0, nil
}

type mockProfileRepo struct {
	profiles   map[string]*entity.POSProfile
	methods    []repository.ProfilePaymentMethod
	methodsErr error
}

func (m *mockProfileRepo) GetByName(ctx context.Context, name string) (*entity.POSProfile, error) {
	return m.profiles[name], nil
}
func (m *mockProfileRepo) GetPaymentMethods(ctx context.Context, profile string) ([]repository.ProfilePaymentMethod, error) {
	if m.methodsErr != nil {
		return nil, m.methodsErr
	}
	return m.methods, nil
}

type mockSettingsRepo struct {
	settings *entity.POSSettings
	upserted *entity.POSSettings
	err      error
}

func (m *mockSettingsRepo) GetEnabledByProfile(ctx context.Context, profile string) (*entity.POSSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil || m.settings.POSProfile != profile {
		return nil, nil
	}
	return m.settings, nil
}
func (m *mockSettingsRepo) Upsert(ctx context.Context, settings *entity.POSSettings) error {
	if m.err != nil {
		return m.err
	}
	m.upserted = settings
	m.settings = settings
	return nil
}

type bootstrapFixture struct {
	userID   uuid.UUID
	users    *mockUserRepo
	shifts   *mockShiftRepo
	profiles *mockProfileRepo
	settings *mockSettingsRepo
}

func newBootstrapFixture() *bootstrapFixture {
	userID := uuid.New()
	printFormat := "POS Receipt"
	return &bootstrapFixture{
		userID: userID,
		users: &mockUserRepo{languages: map[uuid.UUID]string{
			userID: "PT",
		}},
		shifts: &mockShiftRepo{openShift: &entity.POSOpeningShift{
			Name:            "POS-OPN-AAAA0001",
			UserID:          userID,
			POSProfile:      "Main Till",
			Company:         "Brainwise Ltd",
			PeriodStartDate: time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
			Status:          enum.ShiftStatusOpen,
			DocStatus:       enum.DocStatusSubmitted,
		}},
		profiles: &mockProfileRepo{
			profiles: map[string]*entity.POSProfile{
				"Main Till": {
					Name:                        "Main Till",
					Company:                     "Brainwise Ltd",
					Country:                     "Portugal",
					Currency:                    "EUR",
					Warehouse:                   "Stores - BW",
					SellingPriceList:            "Standard Selling",
					Customer:                    "Walk-in Customer",
					WriteOffAccount:             "Write Off - BW",
					WriteOffCostCenter:          "Main - BW",
					PrintFormat:                 &printFormat,
					PrintReceiptOnOrderComplete: true,
				},
			},
			methods: []repository.ProfilePaymentMethod{
				{ModeOfPayment: "Cash", Default: true, AllowInReturns: true, Type: "Cash"},
				{ModeOfPayment: "Card", Default: false, AllowInReturns: false, Type: "Bank"},
			},
		},
		settings: &mockSettingsRepo{settings: &entity.POSSettings{
			Name:        "POS-SET-AAAA0001",
			POSProfile:  "Main Till",
			Enabled:     true,
			AllowReturn: true,
		}},
	}
}

func (f *bootstrapFixture) service() *BootstrapService {
	companies := &mockCompanyRepo{companies: map[string]*entity.Company{
		"Brainwise Ltd": {Name: "Brainwise Ltd", DefaultCurrency: "EUR"},
	}}
	return NewBootstrapService(f.users, f.shifts, f.profiles, f.settings, companies)
}

func TestGetInitialDataRequiresAuthentication(t *testing.T) {
	f := newBootstrapFixture()

	_, err := f.service().GetInitialData(context.Background(), uuid.Nil)
	if !errors.Is(err, apperror.ErrAuthenticationRequired) {
		t.Fatalf("GetInitialData() error = %v, want %v", err, apperror.ErrAuthenticationRequired)
	}
}

func TestGetInitialDataWithoutOpenShift(t *testing.T) {
	f := newBootstrapFixture()
	f.shifts.openShift = nil

	data, err := f.service().GetInitialData(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("GetInitialData() error = %v", err)
	}

	if !data.Success {
		t.Error("expected success = true")
	}
	if data.Shift != nil || data.POSProfile != nil {
		t.Error("expected nil shift and profile when no shift is open")
	}
	if data.PaymentMethods == nil || len(data.PaymentMethods) != 0 {
		t.Errorf("expected empty payment methods, got %v", data.PaymentMethods)
	}
	if data.POSSettings != entity.DefaultPOSSettings() {
		t.Error("expected default settings when no shift is open")
	}
	if data.Locale != "pt" {
		t.Errorf("locale = %s, want pt", data.Locale)
	}
}

func TestGetInitialDataWithOpenShift(t *testing.T) {
	f := newBootstrapFixture()

	data, err := f.service().GetInitialData(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("GetInitialData() error = %v", err)
	}

	if data.Shift == nil {
		t.Fatal("expected shift in payload")
	}
	if data.Shift.Name != "POS-OPN-AAAA0001" {
		t.Errorf("shift name = %s, want POS-OPN-AAAA0001", data.Shift.Name)
	}
	if data.Shift.PeriodStartDate != "2026-03-15 09:30:00" {
		t.Errorf("period start = %s, want 2026-03-15 09:30:00", data.Shift.PeriodStartDate)
	}
	if data.Shift.Status != "Open" {
		t.Errorf("shift status = %s, want Open", data.Shift.Status)
	}

	if data.POSProfile == nil {
		t.Fatal("expected profile in payload")
	}
	if data.POSProfile.Currency != "EUR" || data.POSProfile.Company != "Brainwise Ltd" {
		t.Errorf("profile projection = %+v", data.POSProfile)
	}
	if !data.POSProfile.AutoPrint {
		t.Error("expected auto_print from print_receipt_on_order_complete")
	}

	if !data.POSSettings.AllowReturn {
		t.Error("expected stored settings, not defaults")
	}
	if len(data.PaymentMethods) != 2 {
		t.Fatalf("expected 2 payment methods, got %d", len(data.PaymentMethods))
	}
	if data.PaymentMethods[0].ModeOfPayment != "Cash" || data.PaymentMethods[0].Type != "Cash" {
		t.Errorf("first payment method = %+v", data.PaymentMethods[0])
	}
}

func TestGetInitialDataDefaultsLocale(t *testing.T) {
	f := newBootstrapFixture()
	f.users.languages = map[uuid.UUID]string{}

	data, err := f.service().GetInitialData(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("GetInitialData() error = %v", err)
	}
	if data.Locale != "en" {
		t.Errorf("locale = %s, want en", data.Locale)
	}
}

func TestGetInitialDataSettingsLookupFailureFallsBack(t *testing.T) {
	f := newBootstrapFixture()
	f.settings.err = errors.New("settings table gone")

	data, err := f.service().GetInitialData(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("GetInitialData() error = %v, settings failures must not break bootstrap", err)
	}
	if data.POSSettings != entity.DefaultPOSSettings() {
		t.Error("expected default settings on lookup failure")
	}
}

func TestGetInitialDataNoEnabledSettingsFallsBack(t *testing.T) {
	f := newBootstrapFixture()
	f.settings.settings = nil

	data, err := f.service().GetInitialData(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("GetInitialData() error = %v", err)
	}
	if data.POSSettings != entity.DefaultPOSSettings() {
		t.Error("expected default settings when no enabled record exists")
	}
	if !data.POSSettings.AllowUserToEditItemDiscount {
		t.Error("default allow_user_to_edit_item_discount must be true")
	}
	if data.POSSettings.DecimalPrecision != "2" {
		t.Errorf("default decimal_precision = %s, want 2", data.POSSettings.DecimalPrecision)
	}
}

func TestGetInitialDataPaymentMethodFailureFallsBack(t *testing.T) {
	f := newBootstrapFixture()
	f.profiles.methodsErr = errors.New("join failed")

	data, err := f.service().GetInitialData(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("GetInitialData() error = %v, payment method failures must not break bootstrap", err)
	}
	if data.PaymentMethods == nil || len(data.PaymentMethods) != 0 {
		t.Errorf("expected empty payment methods on failure, got %v", data.PaymentMethods)
	}
}

func TestGetInitialDataShiftLookupFailurePropagates(t *testing.T) {
	f := newBootstrapFixture()
	shiftErr := errors.New("db down")
	f.shifts.err = shiftErr

	_, err := f.service().GetInitialData(context.Background(), f.userID)
	if !errors.Is(err, shiftErr) {
		t.Fatalf("GetInitialData() error = %v, want %v", err, shiftErr)
	}
}

func TestGetInitialDataIsRepeatable(t *testing.T) {
	f := newBootstrapFixture()
	svc := f.service()

	first, err := svc.GetInitialData(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("GetInitialData() error = %v", err)
	}
	second, err := svc.GetInitialData(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("GetInitialData() error = %v", err)
	}

	if *first.Shift != *second.Shift {
		t.Error("repeated bootstrap must return the same shift")
	}
	if first.POSSettings != second.POSSettings {
		t.Error("repeated bootstrap must return the same settings")
	}
}
