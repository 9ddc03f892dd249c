package handlers

import (
	"net/http"

	"consultly/models"
	"consultly/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle plus the payment leg attached
// to it.
type BookingHandler struct {
	Bookings booking.BookingService
	Payments booking.PaymentHandler
}

// bookingEnvelope builds the success envelope for a mutation result. Warnings
// from provider-dependent side effects ride along without failing the call.
func bookingEnvelope(message string, result *models.BookingResult) gin.H {
	resp := gin.H{"success": true, "message": message, "data": result.Booking}
	if len(result.Warnings) > 0 {
		resp["warnings"] = result.Warnings
	}
	return resp
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Bookings.Create(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Warn("Booking creation failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookingEnvelope("Booking created", result))
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking", "data": b})
}

// ListBookingsHandler handles GET /api/bookings with optional filters.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid filter: " + err.Error()})
		return
	}

	bookings, err := h.Bookings.List(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bookings", "data": bookings})
}

// UpdateBookingHandler handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id := c.Param("id")

	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Bookings.Update(c.Request.Context(), id, upd)
	if err != nil {
		getLogger(c).Warn("Booking update failed", zap.String("bookingID", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingEnvelope("Booking updated", result))
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Bookings.Delete(c.Request.Context(), id); err != nil {
		getLogger(c).Warn("Booking delete failed", zap.String("bookingID", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted"})
}

// CreatePaymentIntentHandler handles POST /api/payments/intent.
func (h *BookingHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Payments.CreateIntent(c.Request.Context(), req.BookingID)
	if err != nil {
		getLogger(c).Warn("Payment intent creation failed", zap.String("bookingID", req.BookingID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment intent created", "data": resp})
}

// ConfirmPaymentHandler handles POST /api/payments/confirm. A successful
// confirmation flips the booking's payment status, which also exposes the
// meeting join link.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	var req models.PaymentConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Payments.Confirm(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Warn("Payment confirmation failed", zap.String("bookingID", req.BookingID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingEnvelope("Payment confirmed", result))
}
