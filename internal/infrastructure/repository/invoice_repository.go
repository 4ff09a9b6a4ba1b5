package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/enum"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/pkg/pagination"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new sales invoice repository
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.SalesInvoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByName(ctx context.Context, name string) (*entity.SalesInvoice, error) {
	var invoice entity.SalesInvoice
	err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("sales_invoice_payments.idx")
		}).
		First(&invoice, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.SalesInvoice, int64, error) {
	var invoices []entity.SalesInvoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SalesInvoice{})

	if params.Customer != "" {
		query = query.Where("customer = ?", params.Customer)
	}
	if params.POSProfile != "" {
		query = query.Where("pos_profile = ?", params.POSProfile)
	}
	if params.StartDate != nil {
		query = query.Where("posting_date >= ?", params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("posting_date <= ?", params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pageParams := params.Pagination
	if pageParams == nil {
		pageParams = pagination.DefaultPagination()
	}

	err := query.
		Order("posting_date DESC, name DESC").
		Offset(pageParams.Offset()).
		Limit(pageParams.PerPage).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// SubmitWithEntries writes the ledger entries and the submitted invoice as
// one atomic unit. The augmenter may have netted change off a payment line,
// so the payment rows are saved alongside the parent.
func (r *invoiceRepository) SubmitWithEntries(ctx context.Context, invoice *entity.SalesInvoice, entries []entity.GLEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}

		for i := range invoice.Payments {
			if err := tx.Save(&invoice.Payments[i]).Error; err != nil {
				return err
			}
		}

		invoice.DocStatus = enum.DocStatusSubmitted
		return tx.Omit("Payments").Save(invoice).Error
	})
}

type glEntryRepository struct {
	db *gorm.DB
}

// NewGLEntryRepository creates a new GL entry repository
func NewGLEntryRepository(db *gorm.DB) repository.GLEntryRepository {
	return &glEntryRepository{db: db}
}

func (r *glEntryRepository) GetByVoucher(ctx context.Context, voucherType, voucherNo string) ([]entity.GLEntry, error) {
	var entries []entity.GLEntry
	err := r.db.WithContext(ctx).
		Where("voucher_type = ? AND voucher_no = ?", voucherType, voucherNo).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
