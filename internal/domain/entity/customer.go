package entity

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a customer that sales are billed to
type Customer struct {
	Name         string         `gorm:"primaryKey;size:140" json:"name"`
	CustomerName string         `gorm:"size:255;not null" json:"customer_name"`
	Email        *string        `gorm:"size:255" json:"email,omitempty"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	Disabled     bool           `gorm:"default:false" json:"disabled"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
