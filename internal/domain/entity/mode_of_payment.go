package entity

import (
	"time"
)

// Payment types a mode of payment can be classified as.
const (
	PaymentTypeCash    = "Cash"
	PaymentTypeBank    = "Bank"
	PaymentTypePhone   = "Phone"
	PaymentTypeGeneral = "General"
)

// ModeOfPayment represents a configured tender type (cash, card, wallet, ...).
// Wallet modes are backed by a Receivable account and therefore need party
// attribution on their GL entries.
type ModeOfPayment struct {
	Name            string    `gorm:"primaryKey;size:140" json:"name"`
	Type            string    `gorm:"size:50" json:"type"`
	Enabled         bool      `gorm:"default:true" json:"enabled"`
	IsWalletPayment bool      `gorm:"default:false" json:"is_wallet_payment"`
	DefaultAccount  string    `gorm:"size:140" json:"default_account"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name for the ModeOfPayment model
func (ModeOfPayment) TableName() string {
	return "modes_of_payment"
}
