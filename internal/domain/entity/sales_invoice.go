package entity

import (
	"time"

	"gorm.io/gorm"

	"github.com/brainwise/posnext-api/internal/domain/enum"
)

// SalesInvoice represents a finalized point-of-sale sale. DebitTo is the
// customer receivable account the sale posts against.
type SalesInvoice struct {
	Name                   string         `gorm:"primaryKey;size:140" json:"name"`
	Customer               string         `gorm:"size:140;not null;index" json:"customer"`
	Company                string         `gorm:"size:140;not null" json:"company"`
	POSProfile             string         `gorm:"size:140;index" json:"pos_profile"`
	PostingDate            time.Time      `gorm:"type:date;not null" json:"posting_date"`
	Currency               string         `gorm:"size:10;not null" json:"currency"`
	ConversionRate         float64        `gorm:"default:1" json:"conversion_rate"`
	DebitTo                string         `gorm:"size:140;not null" json:"debit_to"`
	CostCenter             string         `gorm:"size:140" json:"cost_center"`
	IsPOS                  bool           `gorm:"default:false" json:"is_pos"`
	IsReturn               bool           `gorm:"default:false" json:"is_return"`
	ReturnAgainst          string         `gorm:"size:140" json:"return_against"`
	GrandTotal             float64        `gorm:"default:0" json:"grand_total"`
	RoundedTotal           float64        `gorm:"default:0" json:"rounded_total"`
	PaidAmount             float64        `gorm:"default:0" json:"paid_amount"`
	WriteOffAmount         float64        `gorm:"default:0" json:"write_off_amount"`
	ChangeAmount           float64        `gorm:"default:0" json:"change_amount"`
	BaseChangeAmount       float64        `gorm:"default:0" json:"base_change_amount"`
	AccountForChangeAmount string         `gorm:"size:140" json:"account_for_change_amount"`
	DocStatus              enum.DocStatus `gorm:"default:0" json:"docstatus"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	CustomerDoc Customer              `gorm:"foreignKey:Customer" json:"-"`
	Payments    []SalesInvoicePayment `gorm:"foreignKey:Parent" json:"payments,omitempty"`
}

// TableName returns the table name for the SalesInvoice model
func (SalesInvoice) TableName() string {
	return "sales_invoices"
}

// DocType returns the voucher type used on GL entries for sales invoices
func (SalesInvoice) DocType() string {
	return "Sales Invoice"
}

// SalesInvoicePayment is a payment line on a POS invoice. Amount is in the
// invoice currency, BaseAmount in the company currency.
type SalesInvoicePayment struct {
	ID            uint      `gorm:"primary_key" json:"id"`
	Parent        string    `gorm:"size:140;not null;index" json:"parent"`
	Idx           int       `gorm:"default:0" json:"idx"`
	ModeOfPayment string    `gorm:"size:140;not null" json:"mode_of_payment"`
	Account       string    `gorm:"size:140;not null" json:"account"`
	Amount        float64   `gorm:"default:0" json:"amount"`
	BaseAmount    float64   `gorm:"default:0" json:"base_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the SalesInvoicePayment model
func (SalesInvoicePayment) TableName() string {
	return "sales_invoice_payments"
}
