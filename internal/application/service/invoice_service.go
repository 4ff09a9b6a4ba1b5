package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/enum"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/pkg/apperror"
	"github.com/brainwise/posnext-api/pkg/utils"
)

// paidAmountTolerance absorbs float rounding when comparing payment totals
// against invoice totals.
const paidAmountTolerance = 0.005

// InvoiceService manages the POS sales invoice lifecycle: drafting an
// invoice against the cashier's open shift and submitting it, which posts
// its ledger entries.
type InvoiceService struct {
	invoiceRepo       repository.InvoiceRepository
	glEntryRepo       repository.GLEntryRepository
	shiftRepo         repository.ShiftRepository
	profileRepo       repository.ProfileRepository
	companyRepo       repository.CompanyRepository
	customerRepo      repository.CustomerRepository
	modeOfPaymentRepo repository.ModeOfPaymentRepository
	postingService    *PostingService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	glEntryRepo repository.GLEntryRepository,
	shiftRepo repository.ShiftRepository,
	profileRepo repository.ProfileRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	modeOfPaymentRepo repository.ModeOfPaymentRepository,
	postingService *PostingService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:       invoiceRepo,
		glEntryRepo:       glEntryRepo,
		shiftRepo:         shiftRepo,
		profileRepo:       profileRepo,
		companyRepo:       companyRepo,
		customerRepo:      customerRepo,
		modeOfPaymentRepo: modeOfPaymentRepo,
		postingService:    postingService,
	}
}

// PaymentLineInput is a single tender on a new invoice
type PaymentLineInput struct {
	ModeOfPayment string
	Amount        float64
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	UserID         uuid.UUID
	Customer       string
	IsReturn       bool
	ReturnAgainst  string
	ConversionRate float64
	GrandTotal     float64
	RoundedTotal   float64
	WriteOffAmount float64
	ChangeAmount   float64
	Payments       []PaymentLineInput
}

// CreateInvoice drafts a POS invoice against the user's open shift. The
// company, currency, cost center, receivable account and change account all
// come from the shift's profile and company, never from the caller.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.SalesInvoice, error) {
	shift, err := s.shiftRepo.FindLatestOpen(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewBadRequestError("No open shift: open a shift before creating invoices")
	}

	profile, err := s.profileRepo.GetByName(ctx, shift.POSProfile)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("POS Profile " + shift.POSProfile)
	}

	company, err := s.companyRepo.GetByName(ctx, profile.Company)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company " + profile.Company)
	}
	if company.DefaultReceivableAccount == "" {
		return nil, apperror.NewBadRequestError("Company " + company.Name + " has no default receivable account")
	}

	customerName := input.Customer
	if customerName == "" {
		customerName = profile.Customer
	}
	if customerName == "" {
		return nil, apperror.NewBadRequestError("Customer is required")
	}
	customer, err := s.customerRepo.GetByName(ctx, customerName)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer " + customerName)
	}

	if input.IsReturn && input.ReturnAgainst == "" {
		return nil, apperror.NewBadRequestError("Return invoices must reference the original invoice")
	}

	conversionRate := input.ConversionRate
	if conversionRate == 0 {
		conversionRate = 1
	}

	invoice := &entity.SalesInvoice{
		Name:                   utils.GenerateDocName(utils.SalesInvoicePrefix),
		Customer:               customer.Name,
		Company:                company.Name,
		POSProfile:             profile.Name,
		PostingDate:            time.Now(),
		Currency:               profile.Currency,
		ConversionRate:         conversionRate,
		DebitTo:                company.DefaultReceivableAccount,
		CostCenter:             s.resolveCostCenter(profile, company),
		IsPOS:                  true,
		IsReturn:               input.IsReturn,
		ReturnAgainst:          input.ReturnAgainst,
		GrandTotal:             input.GrandTotal,
		RoundedTotal:           input.RoundedTotal,
		WriteOffAmount:         input.WriteOffAmount,
		ChangeAmount:           input.ChangeAmount,
		BaseChangeAmount:       input.ChangeAmount * conversionRate,
		AccountForChangeAmount: profile.AccountForChangeAmount,
		DocStatus:              enum.DocStatusDraft,
	}

	paidAmount := 0.0
	for i, line := range input.Payments {
		mode, err := s.modeOfPaymentRepo.GetByName(ctx, line.ModeOfPayment)
		if err != nil {
			return nil, err
		}
		if mode == nil {
			return nil, apperror.NewNotFoundError("Mode of Payment " + line.ModeOfPayment)
		}
		if !mode.Enabled {
			return nil, apperror.NewBadRequestError("Mode of Payment " + mode.Name + " is disabled")
		}
		if mode.DefaultAccount == "" {
			return nil, apperror.NewBadRequestError("Mode of Payment " + mode.Name + " has no default account")
		}

		invoice.Payments = append(invoice.Payments, entity.SalesInvoicePayment{
			Parent:        invoice.Name,
			Idx:           i + 1,
			ModeOfPayment: mode.Name,
			Account:       mode.DefaultAccount,
			Amount:        line.Amount,
			BaseAmount:    line.Amount * conversionRate,
		})
		paidAmount += line.Amount
	}
	invoice.PaidAmount = paidAmount

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// SubmitInvoice submits a draft invoice: validates payment totals, builds
// the GL entries for it and persists both atomically. Any posting failure
// leaves the invoice in draft.
func (s *InvoiceService) SubmitInvoice(ctx context.Context, name string) (*entity.SalesInvoice, error) {
	invoice, err := s.invoiceRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Sales Invoice " + name)
	}
	if invoice.DocStatus != enum.DocStatusDraft {
		return nil, apperror.NewConflictError("Sales Invoice " + name + " is not in draft")
	}

	if err := s.validatePaidAmount(invoice); err != nil {
		return nil, err
	}

	var entries []entity.GLEntry
	if err := s.postingService.MakePOSGLEntries(ctx, invoice, &entries); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SubmitWithEntries(ctx, invoice, entries); err != nil {
		return nil, err
	}

	return invoice, nil
}

// GetInvoice returns an invoice with its payment lines
func (s *InvoiceService) GetInvoice(ctx context.Context, name string) (*entity.SalesInvoice, error) {
	invoice, err := s.invoiceRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Sales Invoice " + name)
	}
	return invoice, nil
}

// ListInvoices returns invoices matching the filter
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.SalesInvoice, int64, error) {
	return s.invoiceRepo.List(ctx, params)
}

// GetLedgerEntries returns the GL entries posted for a submitted invoice
func (s *InvoiceService) GetLedgerEntries(ctx context.Context, name string) ([]entity.GLEntry, error) {
	invoice, err := s.invoiceRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Sales Invoice " + name)
	}
	return s.glEntryRepo.GetByVoucher(ctx, invoice.DocType(), invoice.Name)
}

// validatePaidAmount checks that the tendered total covers the invoice
// total net of change. Returns must not collect more than they refund.
func (s *InvoiceService) validatePaidAmount(invoice *entity.SalesInvoice) error {
	total := invoice.GrandTotal
	if invoice.RoundedTotal != 0 {
		total = invoice.RoundedTotal
	}

	netPaid := invoice.PaidAmount - invoice.ChangeAmount
	diff := netPaid + invoice.WriteOffAmount - total

	if invoice.IsReturn {
		if diff < -paidAmountTolerance {
			return apperror.NewBadRequestError("Refunded amount exceeds the return total")
		}
		return nil
	}

	if math.Abs(diff) > paidAmountTolerance {
		return apperror.NewBadRequestError("Paid amount does not match the invoice total")
	}
	return nil
}

func (s *InvoiceService) resolveCostCenter(profile *entity.POSProfile, company *entity.Company) string {
	if profile.CostCenter != "" {
		return profile.CostCenter
	}
	return company.CostCenter
}
