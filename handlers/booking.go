package handlers

import (
	"net/http"

	"turfhub/models"
	"turfhub/services/booking"
	"turfhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler wires slot booking endpoints to the booking service.
type BookingHandler struct {
	BookingService booking.BookingService
}

// BookSlotHandler handles POST /bookings.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, invoice, err := h.BookingService.BookSlot(userID, input)
	if err != nil {
		logger.Warn("Booking failed",
			zap.String("userID", userID), zap.String("turfID", input.TurfID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": rec, "invoice": invoice})
}

// CancelBookingHandler handles POST /bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.BookingService.CancelBooking(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled and refunded"})
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	rec, err := h.BookingService.GetBooking(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if rec.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Booking does not belong to this user"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListUserBookingsHandler handles GET /bookings.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	page, err := h.BookingService.ListUserBookings(userID, listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listResponse(c, "bookings", page)
}

// ListTurfBookingsHandler handles GET /owner/turfs/:id/bookings.
func (h *BookingHandler) ListTurfBookingsHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	page, err := h.BookingService.ListTurfBookings(ownerID, c.Param("id"), listParams(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	listResponse(c, "bookings", page)
}
