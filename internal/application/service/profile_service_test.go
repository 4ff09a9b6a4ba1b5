package service

import (
	"context"
	"strings"
	"testing"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/pkg/apperror"
	"github.com/brainwise/posnext-api/pkg/utils"
)

func newProfileTestService() (*ProfileService, *mockProfileRepo, *mockSettingsRepo) {
	profiles := &mockProfileRepo{
		profiles: map[string]*entity.POSProfile{
			"Main Till": {
				Name:     "Main Till",
				Company:  "Brainwise Ltd",
				Currency: "EUR",
				Customer: "Walk-in Customer",
			},
		},
		methods: []repository.ProfilePaymentMethod{
			{ModeOfPayment: "Cash", Default: true, AllowInReturns: true, Type: "Cash"},
		},
	}
	settings := &mockSettingsRepo{}
	return NewProfileService(profiles, settings), profiles, settings
}

func TestGetProfileUnknownName(t *testing.T) {
	svc, _, _ := newProfileTestService()

	_, err := svc.GetProfile(context.Background(), "Ghost Till")
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if code := apperror.GetAppError(err).Code; code != 404 {
		t.Errorf("error code = %d, want 404", code)
	}
}

func TestGetSettingsDefaultsWhenNoRecord(t *testing.T) {
	svc, _, _ := newProfileTestService()

	view, err := svc.GetSettings(context.Background(), "Main Till")
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if view != entity.DefaultPOSSettings() {
		t.Errorf("view = %+v, want defaults", view)
	}
}

func TestUpdateSettingsCreatesRecord(t *testing.T) {
	svc, _, settingsRepo := newProfileTestService()

	view, err := svc.UpdateSettings(context.Background(), "Main Till", &entity.POSSettingsView{
		AllowReturn:        true,
		MaxDiscountAllowed: 15,
		DecimalPrecision:   "3",
		EnableSalesPersons: "Optional",
	})
	if err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	stored := settingsRepo.upserted
	if stored == nil {
		t.Fatal("expected settings record to be upserted")
	}
	if !strings.HasPrefix(stored.Name, utils.POSSettingsPrefix) {
		t.Errorf("name = %s, want %s prefix", stored.Name, utils.POSSettingsPrefix)
	}
	if stored.POSProfile != "Main Till" {
		t.Errorf("profile = %s, want Main Till", stored.POSProfile)
	}
	if !stored.Enabled {
		t.Error("stored settings must be enabled")
	}
	if !view.AllowReturn || view.MaxDiscountAllowed != 15 || view.DecimalPrecision != "3" {
		t.Errorf("view = %+v, want submitted values back", view)
	}
}

func TestUpdateSettingsReusesExistingRecord(t *testing.T) {
	svc, _, settingsRepo := newProfileTestService()
	settingsRepo.settings = &entity.POSSettings{
		Name:        "POS-SET-EXISTING",
		POSProfile:  "Main Till",
		Enabled:     true,
		AllowReturn: true,
	}

	view, err := svc.UpdateSettings(context.Background(), "Main Till", &entity.POSSettingsView{
		AllowCreditSale:    true,
		DecimalPrecision:   "2",
		EnableSalesPersons: "Disabled",
	})
	if err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	if settingsRepo.upserted.Name != "POS-SET-EXISTING" {
		t.Errorf("name = %s, want existing record reused", settingsRepo.upserted.Name)
	}
	if view.AllowReturn {
		t.Error("fields absent from the submitted view must be cleared")
	}
	if !view.AllowCreditSale {
		t.Error("submitted fields must be stored")
	}
}

func TestUpdateSettingsUnknownProfile(t *testing.T) {
	svc, _, settingsRepo := newProfileTestService()

	_, err := svc.UpdateSettings(context.Background(), "Ghost Till", &entity.POSSettingsView{})
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if settingsRepo.upserted != nil {
		t.Error("nothing must be stored for an unknown profile")
	}
}

func TestGetPaymentMethodsNeverNil(t *testing.T) {
	svc, profileRepo, _ := newProfileTestService()

	methods, err := svc.GetPaymentMethods(context.Background(), "Main Till")
	if err != nil {
		t.Fatalf("GetPaymentMethods() error = %v", err)
	}
	if len(methods) != 1 || methods[0].ModeOfPayment != "Cash" {
		t.Errorf("methods = %+v", methods)
	}

	profileRepo.methods = nil
	methods, err = svc.GetPaymentMethods(context.Background(), "Main Till")
	if err != nil {
		t.Fatalf("GetPaymentMethods() error = %v", err)
	}
	if methods == nil {
		t.Error("expected empty slice, not nil")
	}
}
