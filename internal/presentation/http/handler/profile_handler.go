package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/brainwise/posnext-api/internal/application/service"
	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/internal/presentation/http/dto/request"
	"github.com/brainwise/posnext-api/internal/presentation/http/dto/response"
)

// ProfileHandler handles POS profile configuration HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles fetching a POS profile by name
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "POS profile retrieved successfully", gin.H{"pos_profile": profile})
}

// GetSettings handles fetching the settings for a profile
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.profileService.GetSettings(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "POS settings retrieved successfully", gin.H{"pos_settings": settings})
}

// UpdateSettings handles storing the settings for a profile
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view := &entity.POSSettingsView{
		TaxInclusive:                      req.TaxInclusive,
		AllowUserToEditAdditionalDiscount: req.AllowUserToEditAdditionalDiscount,
		AllowUserToEditItemDiscount:       req.AllowUserToEditItemDiscount,
		UsePercentageDiscount:             req.UsePercentageDiscount,
		MaxDiscountAllowed:                req.MaxDiscountAllowed,
		DisableRoundedTotal:               req.DisableRoundedTotal,
		AllowCreditSale:                   req.AllowCreditSale,
		AllowReturn:                       req.AllowReturn,
		AllowWriteOffChange:               req.AllowWriteOffChange,
		AllowPartialPayment:               req.AllowPartialPayment,
		UseExactAmount:                    req.UseExactAmount,
		DecimalPrecision:                  req.DecimalPrecision,
		AllowNegativeStock:                req.AllowNegativeStock,
		EnableSalesPersons:                req.EnableSalesPersons,
		SilentPrint:                       req.SilentPrint,
		AllowSalesOrder:                   req.AllowSalesOrder,
		AllowSelectSalesOrder:             req.AllowSelectSalesOrder,
		CreateOnlySalesOrder:              req.CreateOnlySalesOrder,
	}
	if view.DecimalPrecision == "" {
		view.DecimalPrecision = "2"
	}
	if view.EnableSalesPersons == "" {
		view.EnableSalesPersons = "Disabled"
	}

	settings, err := h.profileService.UpdateSettings(c.Request.Context(), c.Param("name"), view)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "POS settings updated successfully", gin.H{"pos_settings": settings})
}

// GetPaymentMethods handles fetching the payment methods for a profile
func (h *ProfileHandler) GetPaymentMethods(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	methods, err := h.profileService.GetPaymentMethods(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment methods retrieved successfully", gin.H{"payment_methods": methods})
}
