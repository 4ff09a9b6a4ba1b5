package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/enum"
	"github.com/brainwise/posnext-api/pkg/apperror"
)

func testProfiles() *mockProfileRepo {
	return &mockProfileRepo{profiles: map[string]*entity.POSProfile{
		"Main Till": {
			Name:     "Main Till",
			Company:  "Brainwise Ltd",
			Currency: "EUR",
		},
		"Closed Till": {
			Name:     "Closed Till",
			Company:  "Brainwise Ltd",
			Currency: "EUR",
			Disabled: true,
		},
	}}
}

func TestOpenShift(t *testing.T) {
	userID := uuid.New()
	shifts := &mockShiftRepo{}
	svc := NewShiftService(shifts, testProfiles())

	shift, err := svc.OpenShift(context.Background(), &OpenShiftInput{
		UserID:        userID,
		POSProfile:    "Main Till",
		OpeningAmount: 150,
	})
	if err != nil {
		t.Fatalf("OpenShift() error = %v", err)
	}

	if !strings.HasPrefix(shift.Name, "POS-OPN-") {
		t.Errorf("shift name = %s, want POS-OPN- prefix", shift.Name)
	}
	if shift.Company != "Brainwise Ltd" {
		t.Errorf("company = %s, want Brainwise Ltd", shift.Company)
	}
	if shift.Status != enum.ShiftStatusOpen {
		t.Errorf("status = %v, want Open", shift.Status)
	}
	if shift.DocStatus != enum.DocStatusSubmitted {
		t.Errorf("docstatus = %v, want Submitted", shift.DocStatus)
	}
	if shift.OpeningAmount != 150 {
		t.Errorf("opening amount = %v, want 150", shift.OpeningAmount)
	}
	if shifts.created == nil {
		t.Error("expected shift to be persisted")
	}
}

func TestOpenShiftRejectsSecondOpenShift(t *testing.T) {
	userID := uuid.New()
	shifts := &mockShiftRepo{openShift: &entity.POSOpeningShift{
		Name:      "POS-OPN-EXISTING",
		UserID:    userID,
		Status:    enum.ShiftStatusOpen,
		DocStatus: enum.DocStatusSubmitted,
	}}
	svc := NewShiftService(shifts, testProfiles())

	_, err := svc.OpenShift(context.Background(), &OpenShiftInput{
		UserID:     userID,
		POSProfile: "Main Till",
	})
	if err == nil {
		t.Fatal("expected conflict when an open shift exists")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 409 {
		t.Errorf("error code = %d, want 409", appErr.Code)
	}
}

func TestOpenShiftRejectsUnknownOrDisabledProfile(t *testing.T) {
	svc := NewShiftService(&mockShiftRepo{}, testProfiles())

	if _, err := svc.OpenShift(context.Background(), &OpenShiftInput{
		UserID:     uuid.New(),
		POSProfile: "Missing Till",
	}); err == nil {
		t.Error("expected error for unknown profile")
	}

	if _, err := svc.OpenShift(context.Background(), &OpenShiftInput{
		UserID:     uuid.New(),
		POSProfile: "Closed Till",
	}); err == nil {
		t.Error("expected error for disabled profile")
	}
}

func TestCloseShift(t *testing.T) {
	userID := uuid.New()
	shift := &entity.POSOpeningShift{
		Name:            "POS-OPN-AAAA0001",
		UserID:          userID,
		POSProfile:      "Main Till",
		PeriodStartDate: time.Now().Add(-8 * time.Hour),
		Status:          enum.ShiftStatusOpen,
		DocStatus:       enum.DocStatusSubmitted,
	}
	shifts := &mockShiftRepo{openShift: shift}
	svc := NewShiftService(shifts, testProfiles())

	closing, err := svc.CloseShift(context.Background(), &CloseShiftInput{
		UserID:        userID,
		ShiftName:     shift.Name,
		ClosingAmount: 1250,
	})
	if err != nil {
		t.Fatalf("CloseShift() error = %v", err)
	}

	if !strings.HasPrefix(closing.Name, "POS-CLO-") {
		t.Errorf("closing name = %s, want POS-CLO- prefix", closing.Name)
	}
	if closing.POSOpeningShift != shift.Name {
		t.Errorf("closing references %s, want %s", closing.POSOpeningShift, shift.Name)
	}
	if closing.ClosingAmount != 1250 {
		t.Errorf("closing amount = %v, want 1250", closing.ClosingAmount)
	}
	if shift.Status != enum.ShiftStatusClosed {
		t.Error("opening shift must flip to Closed")
	}
	if shift.POSClosingShift == nil || *shift.POSClosingShift != closing.Name {
		t.Error("opening shift must link the closing record")
	}
}

func TestCloseShiftOwnershipAndStateGuards(t *testing.T) {
	owner := uuid.New()
	closingName := "POS-CLO-DONE0001"

	tests := []struct {
		name     string
		shift    *entity.POSOpeningShift
		userID   uuid.UUID
		wantCode int
	}{
		{
			name:     "unknown shift",
			shift:    nil,
			userID:   owner,
			wantCode: 404,
		},
		{
			name: "not the owner",
			shift: &entity.POSOpeningShift{
				Name:   "POS-OPN-AAAA0001",
				UserID: owner,
				Status: enum.ShiftStatusOpen,
			},
			userID:   uuid.New(),
			wantCode: 403,
		},
		{
			name: "already closed",
			shift: &entity.POSOpeningShift{
				Name:            "POS-OPN-AAAA0001",
				UserID:          owner,
				Status:          enum.ShiftStatusClosed,
				POSClosingShift: &closingName,
			},
			userID:   owner,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewShiftService(&mockShiftRepo{openShift: tt.shift}, testProfiles())

			_, err := svc.CloseShift(context.Background(), &CloseShiftInput{
				UserID:    tt.userID,
				ShiftName: "POS-OPN-AAAA0001",
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if code := apperror.GetAppError(err).Code; code != tt.wantCode {
				t.Errorf("error code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestGetCurrentShiftReturnsNilWhenNoneOpen(t *testing.T) {
	svc := NewShiftService(&mockShiftRepo{}, testProfiles())

	shift, err := svc.GetCurrentShift(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetCurrentShift() error = %v", err)
	}
	if shift != nil {
		t.Errorf("expected nil shift, got %+v", shift)
	}
}

func TestGetShiftDeniesOtherUsers(t *testing.T) {
	owner := uuid.New()
	shifts := &mockShiftRepo{openShift: &entity.POSOpeningShift{
		Name:   "POS-OPN-AAAA0001",
		UserID: owner,
		Status: enum.ShiftStatusOpen,
	}}
	svc := NewShiftService(shifts, testProfiles())

	_, err := svc.GetShift(context.Background(), uuid.New(), "POS-OPN-AAAA0001")
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("GetShift() error = %v, want %v", err, apperror.ErrForbidden)
	}

	shift, err := svc.GetShift(context.Background(), owner, "POS-OPN-AAAA0001")
	if err != nil {
		t.Fatalf("GetShift() error = %v", err)
	}
	if shift.Name != "POS-OPN-AAAA0001" {
		t.Errorf("shift = %s, want POS-OPN-AAAA0001", shift.Name)
	}
}
