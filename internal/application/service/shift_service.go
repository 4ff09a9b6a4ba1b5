package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/enum"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/pkg/apperror"
	"github.com/brainwise/posnext-api/pkg/pagination"
	"github.com/brainwise/posnext-api/pkg/utils"
)

// ShiftService manages the POS shift lifecycle: opening a till session
// against a profile and closing it with the counted totals
type ShiftService struct {
	shiftRepo   repository.ShiftRepository
	profileRepo repository.ProfileRepository
}

// NewShiftService creates a new shift service
func NewShiftService(shiftRepo repository.ShiftRepository, profileRepo repository.ProfileRepository) *ShiftService {
	return &ShiftService{
		shiftRepo:   shiftRepo,
		profileRepo: profileRepo,
	}
}

// OpenShiftInput represents the open shift input
type OpenShiftInput struct {
	UserID        uuid.UUID
	POSProfile    string
	OpeningAmount float64
}

// OpenShift opens a new till session for the user. A user can have at most
// one open shift at a time.
func (s *ShiftService) OpenShift(ctx context.Context, input *OpenShiftInput) (*entity.POSOpeningShift, error) {
	profile, err := s.profileRepo.GetByName(ctx, input.POSProfile)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("POS Profile " + input.POSProfile)
	}
	if profile.Disabled {
		return nil, apperror.NewBadRequestError("POS Profile " + input.POSProfile + " is disabled")
	}

	existing, err := s.shiftRepo.FindLatestOpen(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An open shift already exists: " + existing.Name)
	}

	shift := &entity.POSOpeningShift{
		Name:            utils.GenerateDocName(utils.OpeningShiftPrefix),
		UserID:          input.UserID,
		POSProfile:      profile.Name,
		Company:         profile.Company,
		PeriodStartDate: time.Now(),
		Status:          enum.ShiftStatusOpen,
		DocStatus:       enum.DocStatusSubmitted,
		OpeningAmount:   input.OpeningAmount,
	}

	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}

	return shift, nil
}

// CloseShiftInput represents the close shift input
type CloseShiftInput struct {
	UserID        uuid.UUID
	ShiftName     string
	ClosingAmount float64
}

// CloseShift closes the user's shift by creating a closing record and
// linking it to the opening shift
func (s *ShiftService) CloseShift(ctx context.Context, input *CloseShiftInput) (*entity.POSClosingShift, error) {
	shift, err := s.shiftRepo.GetByName(ctx, input.ShiftName)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("POS Opening Shift " + input.ShiftName)
	}
	if shift.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if shift.Status != enum.ShiftStatusOpen || shift.POSClosingShift != nil {
		return nil, apperror.NewConflictError("Shift " + shift.Name + " is already closed")
	}

	closing := &entity.POSClosingShift{
		Name:            utils.GenerateDocName(utils.ClosingShiftPrefix),
		POSOpeningShift: shift.Name,
		UserID:          shift.UserID,
		POSProfile:      shift.POSProfile,
		PeriodEndDate:   time.Now(),
		ClosingAmount:   input.ClosingAmount,
		DocStatus:       enum.DocStatusSubmitted,
	}

	if err := s.shiftRepo.Close(ctx, shift, closing); err != nil {
		return nil, err
	}

	return closing, nil
}

// GetCurrentShift returns the user's open shift, or nil when none exists
func (s *ShiftService) GetCurrentShift(ctx context.Context, userID uuid.UUID) (*entity.POSOpeningShift, error) {
	return s.shiftRepo.FindLatestOpen(ctx, userID)
}

// GetShift returns a shift by name, restricted to the owning user
func (s *ShiftService) GetShift(ctx context.Context, userID uuid.UUID, name string) (*entity.POSOpeningShift, error) {
	shift, err := s.shiftRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("POS Opening Shift " + name)
	}
	if shift.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return shift, nil
}

// ListShifts returns the user's shifts, newest first
func (s *ShiftService) ListShifts(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.POSOpeningShift, int64, error) {
	return s.shiftRepo.List(ctx, userID, params)
}
