package handlers

import (
	"net/http"
	"strconv"
	"time"

	"shutterbook/services/availability"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the slot grid and date availability checks.
type AvailabilityHandler struct {
	Index *availability.Index
}

// NewAvailabilityHandler creates a new AvailabilityHandler instance.
func NewAvailabilityHandler(index *availability.Index) *AvailabilityHandler {
	return &AvailabilityHandler{Index: index}
}

// ListSlotsHandler returns the fixed time-slot catalog.
func (h *AvailabilityHandler) ListSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.Index.ListSlots()})
}

// CheckDateHandler answers "is date D offered" for ?date=YYYY-MM-DD.
func (h *AvailabilityHandler) CheckDateHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "expected ?date=YYYY-MM-DD")
		return
	}
	ok, err := h.Index.IsAvailableDate(date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD format")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "available": ok})
}

// ListDatesHandler enumerates available dates over ?from=YYYY-MM-DD&days=N.
// Defaults: from=today, days=30; days is capped at 90.
func (h *AvailabilityHandler) ListDatesHandler(c *gin.Context) {
	from := time.Now()
	if q := c.Query("from"); q != "" {
		parsed, err := time.ParseInLocation(availability.DateLayout, q, time.Now().Location())
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid from date", "expected YYYY-MM-DD format")
			return
		}
		from = parsed
	}

	days := 30
	if q := c.Query("days"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid days", "expected a positive integer")
			return
		}
		days = parsed
	}
	if days > 90 {
		days = 90
	}

	c.JSON(http.StatusOK, gin.H{"dates": h.Index.AvailableDates(from, days)})
}
