package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Document name prefixes, matching the series used on printed vouchers.
const (
	OpeningShiftPrefix = "POS-OPN-"
	ClosingShiftPrefix = "POS-CLO-"
	SalesInvoicePrefix = "ACC-SINV-"
	POSSettingsPrefix  = "POS-SET-"
)

// GenerateDocName generates a document name from a series prefix and a
// random suffix, e.g. "ACC-SINV-4F2A9C1B"
func GenerateDocName(prefix string) string {
	return prefix + strings.ToUpper(uuid.New().String()[:8])
}
