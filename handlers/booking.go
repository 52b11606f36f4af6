package handlers

import (
	"net/http"

	bookingRepo "shutterbook/database/repository/booking"
	"shutterbook/models"
	"shutterbook/services/booking"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking draft session lifecycle and the caller's
// booking history.
type BookingHandler struct {
	Service  booking.BookingSessionService
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingSessionService, bookings bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Bookings: bookings, Logger: logger}
}

func callerID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// InitiateSession creates a new booking draft for a photographer.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		PhotographerID string         `json:"photographerId" binding:"required"`
		FeeMode        models.FeeMode `json:"feeMode,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.FeeMode != "" && !input.FeeMode.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid fee mode", "expected 'rush' or 'platform'")
		return
	}

	view, err := h.Service.InitiateSession(c.Request.Context(), callerID(c), input.PhotographerID, input.FeeMode)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession returns the draft with its live price breakdown.
func (h *BookingHandler) GetSession(c *gin.Context) {
	view, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectDate sets the booking date; changing it clears selected slots.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Service.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleSlot flips one slot label in the draft's selection.
func (h *BookingHandler) ToggleSlot(c *gin.Context) {
	var input struct {
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Service.ToggleSlot(c.Request.Context(), c.Param("sessionID"), input.Slot)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetAddonQuantity sets one addon's quantity on the draft.
func (h *BookingHandler) SetAddonQuantity(c *gin.Context) {
	var input struct {
		AddonID  int `json:"addonId" binding:"required"`
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Service.SetAddonQuantity(c.Request.Context(), c.Param("sessionID"), input.AddonID, input.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ApplyCoupon applies a coupon code against the draft's current subtotal.
func (h *BookingHandler) ApplyCoupon(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Service.ApplyCoupon(c.Request.Context(), c.Param("sessionID"), input.Code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemoveCoupon clears the applied coupon.
func (h *BookingHandler) RemoveCoupon(c *gin.Context) {
	view, err := h.Service.RemoveCoupon(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetDetails updates the rush flag and special requests text.
func (h *BookingHandler) SetDetails(c *gin.Context) {
	var input struct {
		RushDelivery    bool   `json:"rushDelivery"`
		SpecialRequests string `json:"specialRequests"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Service.SetDetails(c.Request.Context(), c.Param("sessionID"), input.RushDelivery, input.SpecialRequests)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ConfirmBooking finalizes a ready draft into a persisted booking.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	record, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.Logger.Info("booking confirmed via API", zap.String("bookingID", record.ID))
	c.JSON(http.StatusCreated, record)
}

// CancelSession discards a booking draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListMyBookings returns the caller's confirmed bookings, newest first.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListByUser(c.Request.Context(), callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking returns one of the caller's confirmed bookings.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	record, err := h.Bookings.GetByID(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if record.UserID != callerID(c) {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	c.JSON(http.StatusOK, record)
}
