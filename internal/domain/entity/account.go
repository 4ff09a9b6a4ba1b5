package entity

import (
	"time"
)

// Account types that require party attribution on GL entries.
const (
	AccountTypeReceivable = "Receivable"
	AccountTypePayable    = "Payable"
	AccountTypeCash       = "Cash"
	AccountTypeBank       = "Bank"
)

// Account represents one node in the chart of accounts
type Account struct {
	Name            string    `gorm:"primaryKey;size:140" json:"name"`
	AccountName     string    `gorm:"size:255;not null" json:"account_name"`
	Company         string    `gorm:"size:140;not null;index" json:"company"`
	AccountCurrency string    `gorm:"size:10" json:"account_currency"`
	AccountType     string    `gorm:"size:50" json:"account_type"`
	IsGroup         bool      `gorm:"default:false" json:"is_group"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	CompanyDoc Company `gorm:"foreignKey:Company" json:"-"`
}

// TableName returns the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
