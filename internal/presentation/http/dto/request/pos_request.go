package request

// OpenShiftRequest represents an open shift request
type OpenShiftRequest struct {
	POSProfile    string  `json:"pos_profile" binding:"required,max=140"`
	OpeningAmount float64 `json:"opening_amount" binding:"gte=0"`
}

// CloseShiftRequest represents a close shift request
type CloseShiftRequest struct {
	ClosingAmount float64 `json:"closing_amount" binding:"gte=0"`
}

// PaymentLineRequest is a single tender line on a new invoice
type PaymentLineRequest struct {
	ModeOfPayment string  `json:"mode_of_payment" binding:"required,max=140"`
	Amount        float64 `json:"amount"`
}

// CreateInvoiceRequest represents a create invoice request
type CreateInvoiceRequest struct {
	Customer       string               `json:"customer" binding:"omitempty,max=140"`
	IsReturn       bool                 `json:"is_return"`
	ReturnAgainst  string               `json:"return_against" binding:"omitempty,max=140"`
	ConversionRate float64              `json:"conversion_rate" binding:"gte=0"`
	GrandTotal     float64              `json:"grand_total"`
	RoundedTotal   float64              `json:"rounded_total"`
	WriteOffAmount float64              `json:"write_off_amount"`
	ChangeAmount   float64              `json:"change_amount"`
	Payments       []PaymentLineRequest `json:"payments" binding:"required,min=1,dive"`
}

// UpdateSettingsRequest represents a POS settings update request
type UpdateSettingsRequest struct {
	TaxInclusive                      bool    `json:"tax_inclusive"`
	AllowUserToEditAdditionalDiscount bool    `json:"allow_user_to_edit_additional_discount"`
	AllowUserToEditItemDiscount       bool    `json:"allow_user_to_edit_item_discount"`
	UsePercentageDiscount             bool    `json:"use_percentage_discount"`
	MaxDiscountAllowed                float64 `json:"max_discount_allowed" binding:"gte=0,lte=100"`
	DisableRoundedTotal               bool    `json:"disable_rounded_total"`
	AllowCreditSale                   bool    `json:"allow_credit_sale"`
	AllowReturn                       bool    `json:"allow_return"`
	AllowWriteOffChange               bool    `json:"allow_write_off_change"`
	AllowPartialPayment               bool    `json:"allow_partial_payment"`
	UseExactAmount                    bool    `json:"use_exact_amount"`
	DecimalPrecision                  string  `json:"decimal_precision" binding:"omitempty,oneof=0 1 2 3 4"`
	AllowNegativeStock                bool    `json:"allow_negative_stock"`
	EnableSalesPersons                string  `json:"enable_sales_persons" binding:"omitempty,oneof=Disabled Optional Required"`
	SilentPrint                       bool    `json:"silent_print"`
	AllowSalesOrder                   bool    `json:"allow_sales_order"`
	AllowSelectSalesOrder             bool    `json:"allow_select_sales_order"`
	CreateOnlySalesOrder              bool    `json:"create_only_sales_order"`
}
