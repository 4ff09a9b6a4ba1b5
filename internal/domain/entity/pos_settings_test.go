package entity

import (
	"encoding/json"
	"testing"
)

// The settings payload is a fixed contract with the POS frontend: every key
// must be present whether the values come from a stored record or from the
// defaults.
var settingsKeys = []string{
	"enabled",
	"tax_inclusive",
	"allow_user_to_edit_additional_discount",
	"allow_user_to_edit_item_discount",
	"use_percentage_discount",
	"max_discount_allowed",
	"disable_rounded_total",
	"allow_credit_sale",
	"allow_return",
	"allow_write_off_change",
	"allow_partial_payment",
	"use_exact_amount",
	"decimal_precision",
	"allow_negative_stock",
	"enable_sales_persons",
	"silent_print",
	"allow_sales_order",
	"allow_select_sales_order",
	"create_only_sales_order",
}

func TestDefaultPOSSettingsCarriesAllKeys(t *testing.T) {
	raw, err := json.Marshal(DefaultPOSSettings())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(payload) != len(settingsKeys) {
		t.Errorf("payload has %d keys, want %d", len(payload), len(settingsKeys))
	}
	for _, key := range settingsKeys {
		if _, ok := payload[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}

func TestDefaultPOSSettingsValues(t *testing.T) {
	defaults := DefaultPOSSettings()

	if !defaults.AllowUserToEditItemDiscount {
		t.Error("allow_user_to_edit_item_discount must default to true")
	}
	if !defaults.DisableRoundedTotal {
		t.Error("disable_rounded_total must default to true")
	}
	if defaults.DecimalPrecision != "2" {
		t.Errorf("decimal_precision = %q, want \"2\"", defaults.DecimalPrecision)
	}
	if defaults.EnableSalesPersons != "Disabled" {
		t.Errorf("enable_sales_persons = %q, want \"Disabled\"", defaults.EnableSalesPersons)
	}
	if defaults.Enabled || defaults.AllowReturn || defaults.AllowCreditSale {
		t.Error("remaining toggles must default to false")
	}
}

func TestViewProjectsStoredRecord(t *testing.T) {
	stored := &POSSettings{
		Name:               "POS-SET-AAAA0001",
		POSProfile:         "Main Till",
		Enabled:            true,
		AllowReturn:        true,
		MaxDiscountAllowed: 15,
		DecimalPrecision:   "3",
		EnableSalesPersons: "Required",
	}

	view := stored.View()
	if !view.Enabled || !view.AllowReturn {
		t.Error("view must carry stored toggles")
	}
	if view.MaxDiscountAllowed != 15 {
		t.Errorf("max_discount_allowed = %v, want 15", view.MaxDiscountAllowed)
	}
	if view.DecimalPrecision != "3" || view.EnableSalesPersons != "Required" {
		t.Errorf("string fields = %q/%q", view.DecimalPrecision, view.EnableSalesPersons)
	}
}
