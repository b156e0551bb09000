package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/app/services"
	"github.com/alumnet/backend/internal/middleware"
	"github.com/alumnet/backend/internal/pkg/apperrors"
)

// DonationController handles the donation payment flow
type DonationController struct {
	donationService services.DonationService
	logger          zerolog.Logger
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService services.DonationService, logger zerolog.Logger) *DonationController {
	return &DonationController{donationService: donationService, logger: logger}
}

// CreatePayment starts a hosted payment
// @Summary Start a donation payment
// @Description Amount is in major units and must be at least 1. Currency "usd" (any case) is charged in USD, anything else in NGN.
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Donation"
// @Success 200 {object} dto.CreatePaymentResponse
// @Failure 400 {object} dto.ErrorResponse "Amount must be at least 1"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /donations/create-payment [post]
func (c *DonationController) CreatePayment(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	res, err := c.donationService.CreatePayment(ctx.Request.Context(), middleware.CurrentUserID(ctx), req.Amount, req.Currency)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// VerifyPayment confirms a payment and records the donation
// @Summary Verify a donation payment
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Payment reference"
// @Success 200 {object} dto.VerifyPaymentResponse
// @Failure 400 {object} dto.VerifyPaymentResponse "Payment verification failed"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /donations/verify/{reference} [get]
func (c *DonationController) VerifyPayment(ctx *gin.Context) {
	res, err := c.donationService.VerifyPayment(ctx.Request.Context(), middleware.CurrentUserID(ctx), ctx.Param("reference"))
	if err != nil {
		if errors.Is(err, apperrors.ErrPaymentVerificationFailed) {
			ctx.JSON(http.StatusBadRequest, dto.VerifyPaymentResponse{Success: false, Message: "Payment verification failed"})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// ListDonations returns all donations
// @Summary List donations
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.DonationResponse
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /donations [get]
func (c *DonationController) ListDonations(ctx *gin.Context) {
	donations, err := c.donationService.ListDonations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDonationResponses(donations))
}
