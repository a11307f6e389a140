package handlers

import (
	"errors"
	"net/http"

	"mentorhub/models"
	"mentorhub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the mentee-facing booking flow.
type BookingHandler struct {
	Service booking.Service
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	menteeID := c.GetString("menteeID")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.Create(c.Request.Context(), menteeID, req)
	if err != nil {
		var conflict *booking.SlotConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
			return
		}
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	menteeID := c.GetString("menteeID")
	bookingID := c.Param("id")

	b, err := h.Service.Confirm(c.Request.Context(), menteeID, bookingID)
	if err != nil {
		var conflict *booking.SlotConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
			return
		}
		logger.Error("Failed to confirm booking", zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	menteeID := c.GetString("menteeID")
	bookingID := c.Param("id")

	b, err := h.Service.Cancel(c.Request.Context(), menteeID, bookingID)
	if err != nil {
		getLogger(c).Error("Failed to cancel booking", zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingAsMentorHandler lets the mentor side cancel a session.
func (h *BookingHandler) CancelBookingAsMentorHandler(c *gin.Context) {
	mentorID := c.GetString("mentorID")
	bookingID := c.Param("id")

	b, err := h.Service.Cancel(c.Request.Context(), mentorID, bookingID)
	if err != nil {
		getLogger(c).Error("Failed to cancel booking", zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	menteeID := c.GetString("menteeID")

	bookings, err := h.Service.GetByMentee(c.Request.Context(), menteeID)
	if err != nil {
		getLogger(c).Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
