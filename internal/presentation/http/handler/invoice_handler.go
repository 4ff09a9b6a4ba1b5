package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brainwise/posnext-api/internal/application/service"
	"github.com/brainwise/posnext-api/internal/domain/repository"
	"github.com/brainwise/posnext-api/internal/presentation/http/dto/request"
	"github.com/brainwise/posnext-api/internal/presentation/http/dto/response"
	"github.com/brainwise/posnext-api/pkg/pagination"
)

// InvoiceHandler handles sales invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles drafting a new POS invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateInvoiceInput{
		UserID:         *userID,
		Customer:       req.Customer,
		IsReturn:       req.IsReturn,
		ReturnAgainst:  req.ReturnAgainst,
		ConversionRate: req.ConversionRate,
		GrandTotal:     req.GrandTotal,
		RoundedTotal:   req.RoundedTotal,
		WriteOffAmount: req.WriteOffAmount,
		ChangeAmount:   req.ChangeAmount,
	}
	for _, line := range req.Payments {
		input.Payments = append(input.Payments, service.PaymentLineInput{
			ModeOfPayment: line.ModeOfPayment,
			Amount:        line.Amount,
		})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", gin.H{"invoice": invoice})
}

// Submit handles submitting a draft invoice, which posts its ledger entries
func (h *InvoiceHandler) Submit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	invoice, err := h.invoiceService.SubmitInvoice(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice submitted successfully", gin.H{"invoice": invoice})
}

// Get handles fetching an invoice by name
func (h *InvoiceHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", gin.H{"invoice": invoice})
}

// List handles listing invoices with optional filters
func (h *InvoiceHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	paginationParams := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	paginationParams.Validate()

	params := &repository.InvoiceFilterParams{
		Pagination: paginationParams,
		Customer:   c.Query("customer"),
		POSProfile: c.Query("pos_profile"),
	}
	if raw := c.Query("start_date"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			params.StartDate = &t
		}
	}
	if raw := c.Query("end_date"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			params.EndDate = &t
		}
	}

	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(invoices, pagination.NewPagination(paginationParams.Page, paginationParams.PerPage, total))
	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// GetLedgerEntries handles fetching the GL entries posted for an invoice
func (h *InvoiceHandler) GetLedgerEntries(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	entries, err := h.invoiceService.GetLedgerEntries(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger entries retrieved successfully", gin.H{"gl_entries": entries})
}
