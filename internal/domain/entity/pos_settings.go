package entity

import (
	"time"

	"gorm.io/gorm"
)

// POSSettings holds the per-profile business-rule toggles
type POSSettings struct {
	Name       string         `gorm:"primaryKey;size:140" json:"name"`
	POSProfile string         `gorm:"size:140;not null;index" json:"pos_profile"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Enabled                            bool    `gorm:"default:false" json:"enabled"`
	TaxInclusive                       bool    `gorm:"default:false" json:"tax_inclusive"`
	AllowUserToEditAdditionalDiscount  bool    `gorm:"default:false" json:"allow_user_to_edit_additional_discount"`
	AllowUserToEditItemDiscount        bool    `gorm:"default:true" json:"allow_user_to_edit_item_discount"`
	UsePercentageDiscount              bool    `gorm:"default:false" json:"use_percentage_discount"`
	MaxDiscountAllowed                 float64 `gorm:"default:0" json:"max_discount_allowed"`
	DisableRoundedTotal                bool    `gorm:"default:true" json:"disable_rounded_total"`
	AllowCreditSale                    bool    `gorm:"default:false" json:"allow_credit_sale"`
	AllowReturn                        bool    `gorm:"default:false" json:"allow_return"`
	AllowWriteOffChange                bool    `gorm:"default:false" json:"allow_write_off_change"`
	AllowPartialPayment                bool    `gorm:"default:false" json:"allow_partial_payment"`
	UseExactAmount                     bool    `gorm:"default:false" json:"use_exact_amount"`
	DecimalPrecision                   string  `gorm:"size:10;default:'2'" json:"decimal_precision"`
	AllowNegativeStock                 bool    `gorm:"default:false" json:"allow_negative_stock"`
	EnableSalesPersons                 string  `gorm:"size:50;default:'Disabled'" json:"enable_sales_persons"`
	SilentPrint                        bool    `gorm:"default:false" json:"silent_print"`
	AllowSalesOrder                    bool    `gorm:"default:false" json:"allow_sales_order"`
	AllowSelectSalesOrder              bool    `gorm:"default:false" json:"allow_select_sales_order"`
	CreateOnlySalesOrder               bool    `gorm:"default:false" json:"create_only_sales_order"`
}

// TableName returns the table name for the POSSettings model
func (POSSettings) TableName() string {
	return "pos_settings"
}

// POSSettingsView is the fixed projection of the recognized settings fields.
// The field set is a contract shared with the bootstrap consumer: it always
// carries all nineteen keys, whether sourced from a stored record or from
// DefaultPOSSettings.
type POSSettingsView struct {
	Enabled                           bool    `json:"enabled"`
	TaxInclusive                      bool    `json:"tax_inclusive"`
	AllowUserToEditAdditionalDiscount bool    `json:"allow_user_to_edit_additional_discount"`
	AllowUserToEditItemDiscount       bool    `json:"allow_user_to_edit_item_discount"`
	UsePercentageDiscount             bool    `json:"use_percentage_discount"`
	MaxDiscountAllowed                float64 `json:"max_discount_allowed"`
	DisableRoundedTotal               bool    `json:"disable_rounded_total"`
	AllowCreditSale                   bool    `json:"allow_credit_sale"`
	AllowReturn                       bool    `json:"allow_return"`
	AllowWriteOffChange               bool    `json:"allow_write_off_change"`
	AllowPartialPayment               bool    `json:"allow_partial_payment"`
	UseExactAmount                    bool    `json:"use_exact_amount"`
	DecimalPrecision                  string  `json:"decimal_precision"`
	AllowNegativeStock                bool    `json:"allow_negative_stock"`
	EnableSalesPersons                string  `json:"enable_sales_persons"`
	SilentPrint                       bool    `json:"silent_print"`
	AllowSalesOrder                   bool    `json:"allow_sales_order"`
	AllowSelectSalesOrder             bool    `json:"allow_select_sales_order"`
	CreateOnlySalesOrder              bool    `json:"create_only_sales_order"`
}

// DefaultPOSSettings returns the full default settings set, used whenever no
// stored record applies or a settings lookup fails
func DefaultPOSSettings() POSSettingsView {
	return POSSettingsView{
		Enabled:                           false,
		TaxInclusive:                      false,
		AllowUserToEditAdditionalDiscount: false,
		AllowUserToEditItemDiscount:       true,
		UsePercentageDiscount:             false,
		MaxDiscountAllowed:                0,
		DisableRoundedTotal:               true,
		AllowCreditSale:                   false,
		AllowReturn:                       false,
		AllowWriteOffChange:               false,
		AllowPartialPayment:               false,
		UseExactAmount:                    false,
		DecimalPrecision:                  "2",
		AllowNegativeStock:                false,
		EnableSalesPersons:                "Disabled",
		SilentPrint:                       false,
		AllowSalesOrder:                   false,
		AllowSelectSalesOrder:             false,
		CreateOnlySalesOrder:              false,
	}
}

// View projects a stored settings record onto the shared field set
func (s *POSSettings) View() POSSettingsView {
	return POSSettingsView{
		Enabled:                           s.Enabled,
		TaxInclusive:                      s.TaxInclusive,
		AllowUserToEditAdditionalDiscount: s.AllowUserToEditAdditionalDiscount,
		AllowUserToEditItemDiscount:       s.AllowUserToEditItemDiscount,
		UsePercentageDiscount:             s.UsePercentageDiscount,
		MaxDiscountAllowed:                s.MaxDiscountAllowed,
		DisableRoundedTotal:               s.DisableRoundedTotal,
		AllowCreditSale:                   s.AllowCreditSale,
		AllowReturn:                       s.AllowReturn,
		AllowWriteOffChange:               s.AllowWriteOffChange,
		AllowPartialPayment:               s.AllowPartialPayment,
		UseExactAmount:                    s.UseExactAmount,
		DecimalPrecision:                  s.DecimalPrecision,
		AllowNegativeStock:                s.AllowNegativeStock,
		EnableSalesPersons:                s.EnableSalesPersons,
		SilentPrint:                       s.SilentPrint,
		AllowSalesOrder:                   s.AllowSalesOrder,
		AllowSelectSalesOrder:             s.AllowSelectSalesOrder,
		CreateOnlySalesOrder:              s.CreateOnlySalesOrder,
	}
}
