package handlers

import (
	"net/http"

	"shutterbook/models"
	"shutterbook/services/pricing"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
)

// PricingHandler serves stateless price quotes.
type PricingHandler struct {
	Calculator *pricing.Calculator
}

// NewPricingHandler creates a new PricingHandler instance.
func NewPricingHandler(calc *pricing.Calculator) *PricingHandler {
	return &PricingHandler{Calculator: calc}
}

// QuoteHandler computes a full price breakdown for the given inputs without
// any session state.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	var input models.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.FeeMode != "" && !input.FeeMode.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid fee mode", "expected 'rush' or 'platform'")
		return
	}

	breakdown, err := h.Calculator.Quote(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
