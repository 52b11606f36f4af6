package handlers

import (
	"net/http"
	"strconv"

	bookingRepo "shutterbook/database/repository/booking"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves back-office queries.
type AdminHandler struct {
	Bookings bookingRepo.BookingRepository
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(bookings bookingRepo.BookingRepository) *AdminHandler {
	return &AdminHandler{Bookings: bookings}
}

// ListBookingsHandler returns recent confirmed bookings, newest first.
// ?limit=N caps the page (default 100).
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	limit := int64(100)
	if q := c.Query("limit"); q != "" {
		parsed, err := strconv.ParseInt(q, 10, 64)
		if err != nil || parsed < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit", "expected a positive integer")
			return
		}
		limit = parsed
	}

	bookings, err := h.Bookings.ListAll(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
