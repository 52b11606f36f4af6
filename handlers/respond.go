package handlers

import (
	"errors"
	"net/http"

	bookingRepo "shutterbook/database/repository/booking"
	photographerRepo "shutterbook/database/repository/photographer"
	"shutterbook/services/booking"
	"shutterbook/services/catalog"
	"shutterbook/services/coupon"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps domain errors to HTTP statuses. Every domain error
// is a recoverable validation failure; anything unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	var (
		notFound   *catalog.NotFoundError
		badQty     *catalog.InvalidQuantityError
		unknownCpn *coupon.UnknownCouponError
		minOrder   *coupon.MinimumOrderNotMetError
		badDate    *booking.DateUnavailableError
		badSlot    *booking.UnknownSlotError
		tooLong    *booking.TextTooLongError
	)

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, photographerRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "photographer not found", "")
	case errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "unknown addon", err.Error())
	case errors.As(err, &badQty):
		utils.JSONError(c, http.StatusBadRequest, "invalid addon quantity", err.Error())
	case errors.As(err, &unknownCpn):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid coupon code", err.Error())
	case errors.As(err, &minOrder):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":         "minimum order not met",
			"details":         err.Error(),
			"requiredMinimum": minOrder.Required,
		})
	case errors.Is(err, booking.ErrNoDateSelected), errors.Is(err, booking.ErrNotReady):
		utils.JSONError(c, http.StatusConflict, "booking draft is incomplete", err.Error())
	case errors.As(err, &badDate):
		utils.JSONError(c, http.StatusUnprocessableEntity, "date not available", err.Error())
	case errors.As(err, &badSlot):
		utils.JSONError(c, http.StatusNotFound, "unknown time slot", err.Error())
	case errors.As(err, &tooLong):
		utils.JSONError(c, http.StatusBadRequest, "text too long", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
