package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GLEntry is one ledger posting line. Debit/Credit are in the company
// currency; DebitInAccountCurrency/CreditInAccountCurrency are in the
// account's own currency. Entries are created in bulk when a voucher is
// submitted and never mutated afterwards.
type GLEntry struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PostingDate             time.Time `gorm:"type:date;not null;index" json:"posting_date"`
	Account                 string    `gorm:"size:140;not null;index" json:"account"`
	AccountCurrency         string    `gorm:"size:10" json:"account_currency"`
	PartyType               string    `gorm:"size:50" json:"party_type"`
	Party                   string    `gorm:"size:140" json:"party"`
	Against                 string    `gorm:"size:255" json:"against"`
	Debit                   float64   `gorm:"default:0" json:"debit"`
	Credit                  float64   `gorm:"default:0" json:"credit"`
	DebitInAccountCurrency  float64   `gorm:"default:0" json:"debit_in_account_currency"`
	CreditInAccountCurrency float64   `gorm:"default:0" json:"credit_in_account_currency"`
	VoucherType             string    `gorm:"size:50;not null;index:idx_gl_voucher" json:"voucher_type"`
	VoucherNo               string    `gorm:"size:140;not null;index:idx_gl_voucher" json:"voucher_no"`
	AgainstVoucherType      string    `gorm:"size:50" json:"against_voucher_type"`
	AgainstVoucher          string    `gorm:"size:140" json:"against_voucher"`
	CostCenter              string    `gorm:"size:140" json:"cost_center"`
	Company                 string    `gorm:"size:140;not null" json:"company"`
	CreatedAt               time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new GL entry
func (e *GLEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GLEntry model
func (GLEntry) TableName() string {
	return "gl_entries"
}
