package service

import (
	"context"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/pkg/apperror"
)

// PartyTypeCustomer is the party type attributed to receivable-side entries.
const PartyTypeCustomer = "Customer"

// PostingService builds the ledger entries for POS sales invoices. Payment
// modes flagged as wallet payments are backed by Receivable accounts, which
// require party attribution on the debit entry; regular modes post without
// a party. Lookup failures are never swallowed: an inconsistent chart of
// accounts must abort the posting rather than produce a wrong entry.
type PostingService struct {
	accountRepo          repository.AccountRepository
	modeOfPaymentRepo    repository.ModeOfPaymentRepository
	accountsSettingsRepo repository.AccountsSettingsRepository
	companyRepo          repository.CompanyRepository
}

// NewPostingService creates a new posting service
func NewPostingService(
	accountRepo repository.AccountRepository,
	modeOfPaymentRepo repository.ModeOfPaymentRepository,
	accountsSettingsRepo repository.AccountsSettingsRepository,
	companyRepo repository.CompanyRepository,
) *PostingService {
	return &PostingService{
		accountRepo:          accountRepo,
		modeOfPaymentRepo:    modeOfPaymentRepo,
		accountsSettingsRepo: accountsSettingsRepo,
		companyRepo:          companyRepo,
	}
}

// MakePOSGLEntries appends the payment-side ledger entries for a POS invoice
// to entries. For every payment line with a nonzero amount it appends a
// credit against the customer receivable followed by a debit to the payment
// mode's account. When separate change GL entries are disabled, the change
// amount is netted off the payment mode designated to receive it before the
// entries are built; when enabled, a standard change entry pair is appended
// after all payment lines.
func (s *PostingService) MakePOSGLEntries(ctx context.Context, inv *entity.SalesInvoice, entries *[]entity.GLEntry) error {
	if !inv.IsPOS {
		return nil
	}

	settings, err := s.accountsSettingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	skipChangeGLEntries := !settings.PostChangeGLEntries

	company, err := s.companyRepo.GetByName(ctx, inv.Company)
	if err != nil {
		return err
	}
	if company == nil {
		return apperror.NewNotFoundError("Company " + inv.Company)
	}
	companyCurrency := company.DefaultCurrency

	partyAccountCurrency, err := s.accountRepo.GetCurrency(ctx, inv.DebitTo)
	if err != nil {
		return err
	}

	for i := range inv.Payments {
		paymentMode := &inv.Payments[i]

		if skipChangeGLEntries && paymentMode.Account == inv.AccountForChangeAmount {
			paymentMode.BaseAmount -= inv.ChangeAmount
		}

		if paymentMode.Amount == 0 {
			continue
		}

		// Credit entry to the customer receivable
		creditInAccountCurrency := paymentMode.BaseAmount
		if partyAccountCurrency != companyCurrency {
			creditInAccountCurrency = paymentMode.Amount
		}

		againstVoucher := inv.Name
		if inv.IsReturn && inv.ReturnAgainst != "" {
			againstVoucher = inv.ReturnAgainst
		}

		*entries = append(*entries, entity.GLEntry{
			PostingDate:             inv.PostingDate,
			Account:                 inv.DebitTo,
			AccountCurrency:         partyAccountCurrency,
			PartyType:               PartyTypeCustomer,
			Party:                   inv.Customer,
			Against:                 paymentMode.Account,
			Credit:                  paymentMode.BaseAmount,
			CreditInAccountCurrency: creditInAccountCurrency,
			VoucherType:             inv.DocType(),
			VoucherNo:               inv.Name,
			AgainstVoucherType:      inv.DocType(),
			AgainstVoucher:          againstVoucher,
			CostCenter:              inv.CostCenter,
			Company:                 inv.Company,
		})

		// Debit entry to the payment mode account
		paymentModeAccountCurrency, err := s.accountRepo.GetCurrency(ctx, paymentMode.Account)
		if err != nil {
			return err
		}

		partyType, party, err := s.partyForPaymentMode(ctx, paymentMode.ModeOfPayment, inv.Customer)
		if err != nil {
			return err
		}

		debitInAccountCurrency := paymentMode.BaseAmount
		if paymentModeAccountCurrency != companyCurrency {
			debitInAccountCurrency = paymentMode.Amount
		}

		*entries = append(*entries, entity.GLEntry{
			PostingDate:            inv.PostingDate,
			Account:                paymentMode.Account,
			AccountCurrency:        paymentModeAccountCurrency,
			PartyType:              partyType,
			Party:                  party,
			Against:                inv.Customer,
			Debit:                  paymentMode.BaseAmount,
			DebitInAccountCurrency: debitInAccountCurrency,
			VoucherType:            inv.DocType(),
			VoucherNo:              inv.Name,
			CostCenter:             inv.CostCenter,
			Company:                inv.Company,
		})
	}

	if !skipChangeGLEntries {
		if err := s.makeChangeAmountEntries(ctx, inv, entries, companyCurrency, partyAccountCurrency); err != nil {
			return err
		}
	}

	return nil
}

// partyForPaymentMode returns the party attribution for a payment mode's
// debit entry: ("Customer", customer) for wallet payment modes, blank
// otherwise. An orphaned mode-of-payment reference counts as non-wallet.
func (s *PostingService) partyForPaymentMode(ctx context.Context, modeOfPayment, customer string) (string, string, error) {
	isWallet, err := s.modeOfPaymentRepo.IsWalletPayment(ctx, modeOfPayment)
	if err != nil {
		return "", "", err
	}
	if isWallet {
		return PartyTypeCustomer, customer, nil
	}
	return "", "", nil
}

// makeChangeAmountEntries appends the standard change pair: a debit back to
// the customer receivable and a credit to the change account.
func (s *PostingService) makeChangeAmountEntries(ctx context.Context, inv *entity.SalesInvoice, entries *[]entity.GLEntry, companyCurrency, partyAccountCurrency string) error {
	if inv.ChangeAmount == 0 {
		return nil
	}
	if inv.AccountForChangeAmount == "" {
		return apperror.NewBadRequestError("Account for change amount is required")
	}

	againstVoucher := inv.Name
	if inv.IsReturn && inv.ReturnAgainst != "" {
		againstVoucher = inv.ReturnAgainst
	}

	debitInAccountCurrency := inv.BaseChangeAmount
	if partyAccountCurrency != companyCurrency {
		debitInAccountCurrency = inv.ChangeAmount
	}

	*entries = append(*entries, entity.GLEntry{
		PostingDate:            inv.PostingDate,
		Account:                inv.DebitTo,
		AccountCurrency:        partyAccountCurrency,
		PartyType:              PartyTypeCustomer,
		Party:                  inv.Customer,
		Against:                inv.AccountForChangeAmount,
		Debit:                  inv.BaseChangeAmount,
		DebitInAccountCurrency: debitInAccountCurrency,
		VoucherType:            inv.DocType(),
		VoucherNo:              inv.Name,
		AgainstVoucherType:     inv.DocType(),
		AgainstVoucher:         againstVoucher,
		CostCenter:             inv.CostCenter,
		Company:                inv.Company,
	})

	changeAccountCurrency, err := s.accountRepo.GetCurrency(ctx, inv.AccountForChangeAmount)
	if err != nil {
		return err
	}

	creditInAccountCurrency := inv.BaseChangeAmount
	if changeAccountCurrency != companyCurrency {
		creditInAccountCurrency = inv.ChangeAmount
	}

	*entries = append(*entries, entity.GLEntry{
		PostingDate:             inv.PostingDate,
		Account:                 inv.AccountForChangeAmount,
		AccountCurrency:         changeAccountCurrency,
		Against:                 inv.Customer,
		Credit:                  inv.BaseChangeAmount,
		CreditInAccountCurrency: creditInAccountCurrency,
		VoucherType:             inv.DocType(),
		VoucherNo:               inv.Name,
		CostCenter:              inv.CostCenter,
		Company:                 inv.Company,
	})

	return nil
}
