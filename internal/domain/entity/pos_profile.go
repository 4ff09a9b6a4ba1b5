package entity

import (
	"time"

	"gorm.io/gorm"
)

// POSProfile represents per-till configuration: company, currency, pricing
// defaults and the payment methods offered at that till
type POSProfile struct {
	Name                        string         `gorm:"primaryKey;size:140" json:"name"`
	Company                     string         `gorm:"size:140;not null;index" json:"company"`
	Country                     string         `gorm:"size:100" json:"country"`
	Currency                    string         `gorm:"size:10;not null" json:"currency"`
	Warehouse                   string         `gorm:"size:140" json:"warehouse"`
	SellingPriceList            string         `gorm:"size:140" json:"selling_price_list"`
	Customer                    string         `gorm:"size:140" json:"customer"`
	WriteOffAccount             string         `gorm:"size:140" json:"write_off_account"`
	WriteOffCostCenter          string         `gorm:"size:140" json:"write_off_cost_center"`
	CostCenter                  string         `gorm:"size:140" json:"cost_center"`
	AccountForChangeAmount      string         `gorm:"size:140" json:"account_for_change_amount"`
	PrintFormat                 *string        `gorm:"size:140" json:"print_format,omitempty"`
	PrintReceiptOnOrderComplete bool           `gorm:"default:false" json:"print_receipt_on_order_complete"`
	Disabled                    bool           `gorm:"default:false" json:"disabled"`
	CreatedAt                   time.Time      `json:"created_at"`
	UpdatedAt                   time.Time      `json:"updated_at"`
	DeletedAt                   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	CompanyDoc Company            `gorm:"foreignKey:Company" json:"-"`
	Payments   []POSPaymentMethod `gorm:"foreignKey:Parent" json:"payments,omitempty"`
}

// TableName returns the table name for the POSProfile model
func (POSProfile) TableName() string {
	return "pos_profiles"
}

// POSPaymentMethod is a child row of POSProfile linking a mode of payment
// to the profile, in declared order
type POSPaymentMethod struct {
	ID             uint      `gorm:"primary_key" json:"id"`
	Parent         string    `gorm:"size:140;not null;index" json:"parent"`
	Idx            int       `gorm:"default:0" json:"idx"`
	ModeOfPayment  string    `gorm:"size:140;not null" json:"mode_of_payment"`
	Default        bool      `gorm:"default:false" json:"default"`
	AllowInReturns bool      `gorm:"default:false" json:"allow_in_returns"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the table name for the POSPaymentMethod model
func (POSPaymentMethod) TableName() string {
	return "pos_payment_methods"
}
