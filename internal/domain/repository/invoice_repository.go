package repository

import (
	"context"
	"time"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/pkg/pagination"
)

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Customer   string
	POSProfile string
	StartDate  *time.Time
	EndDate    *time.Time
}

// InvoiceRepository defines the interface for sales invoice data access
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.SalesInvoice) error
	// GetByName loads the invoice with its payment lines, or (nil, nil)
	// when no such invoice exists.
	GetByName(ctx context.Context, name string) (*entity.SalesInvoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.SalesInvoice, int64, error)
	// SubmitWithEntries persists the GL entries and marks the invoice
	// submitted in a single transaction.
	SubmitWithEntries(ctx context.Context, invoice *entity.SalesInvoice, entries []entity.GLEntry) error
}

// GLEntryRepository defines read access to posted ledger entries
type GLEntryRepository interface {
	GetByVoucher(ctx context.Context, voucherType, voucherNo string) ([]entity.GLEntry, error)
}
