package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brainwise/posnext-api/internal/domain/enum"
)

// POSOpeningShift represents a user's active till session. A shift stays Open
// until a closing shift is linked to it.
type POSOpeningShift struct {
	Name            string           `gorm:"primaryKey;size:140" json:"name"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	POSProfile      string           `gorm:"size:140;not null;index" json:"pos_profile"`
	Company         string           `gorm:"size:140;not null" json:"company"`
	PeriodStartDate time.Time        `gorm:"not null;index" json:"period_start_date"`
	PeriodEndDate   *time.Time       `json:"period_end_date,omitempty"`
	Status          enum.ShiftStatus `gorm:"default:0" json:"status"`
	DocStatus       enum.DocStatus   `gorm:"default:0" json:"docstatus"`
	POSClosingShift *string          `gorm:"size:140" json:"pos_closing_shift,omitempty"`
	OpeningAmount   float64          `gorm:"default:0" json:"opening_amount"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	ProfileDoc POSProfile `gorm:"foreignKey:POSProfile" json:"-"`
}

// TableName returns the table name for the POSOpeningShift model
func (POSOpeningShift) TableName() string {
	return "pos_opening_shifts"
}

// POSClosingShift finalizes an opening shift and records the closing totals
type POSClosingShift struct {
	Name            string         `gorm:"primaryKey;size:140" json:"name"`
	POSOpeningShift string         `gorm:"size:140;not null;uniqueIndex" json:"pos_opening_shift"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	POSProfile      string         `gorm:"size:140;not null" json:"pos_profile"`
	PeriodEndDate   time.Time      `gorm:"not null" json:"period_end_date"`
	ClosingAmount   float64        `gorm:"default:0" json:"closing_amount"`
	DocStatus       enum.DocStatus `gorm:"default:0" json:"docstatus"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the POSClosingShift model
func (POSClosingShift) TableName() string {
	return "pos_closing_shifts"
}
