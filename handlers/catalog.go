package handlers

import (
	"net/http"
	"strconv"

	"shutterbook/models"
	"shutterbook/services/catalog"
	"shutterbook/services/coupon"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the addon catalog and coupon validation.
type CatalogHandler struct {
	Addons  *catalog.AddonCatalog
	Coupons *coupon.Ledger
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(addons *catalog.AddonCatalog, coupons *coupon.Ledger) *CatalogHandler {
	return &CatalogHandler{Addons: addons, Coupons: coupons}
}

// ListAddonsHandler returns the fixed addon catalog.
func (h *CatalogHandler) ListAddonsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"addons": h.Addons.List()})
}

// GetAddonHandler returns one addon by id.
func (h *CatalogHandler) GetAddonHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid addon id", "expected an integer id")
		return
	}
	addon, err := h.Addons.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, addon)
}

// ValidateCouponHandler previews a coupon against a candidate subtotal
// without touching any draft.
func (h *CatalogHandler) ValidateCouponHandler(c *gin.Context) {
	var input struct {
		Code     string       `json:"code" binding:"required"`
		Subtotal models.Money `json:"subtotal" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	applied, err := h.Coupons.Apply(input.Code, input.Subtotal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applied)
}
