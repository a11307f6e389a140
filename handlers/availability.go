package handlers

import (
	"errors"
	"net/http"
	"time"

	"mentorhub/services/availability"
	"mentorhub/services/mentor"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the reconciled availability view.
type AvailabilityHandler struct {
	Mentors      mentor.Service
	Availability *availability.Service
}

// GetAvailabilityHandler returns a mentor's day-by-day slot view for an
// inclusive date range. dateFrom and dateTo default to today when omitted.
// The response carries an "incomplete" flag when any cells were skipped.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	mentorID := c.Param("id")

	today := time.Now().Format(utils.DateLayout)
	dateFrom := c.DefaultQuery("dateFrom", today)
	dateTo := c.DefaultQuery("dateTo", dateFrom)

	if _, err := utils.ParseDate(dateFrom, time.UTC); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateFrom, expected YYYY-MM-DD"})
		return
	}
	if _, err := utils.ParseDate(dateTo, time.UTC); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dateTo, expected YYYY-MM-DD"})
		return
	}

	m, err := h.Mentors.GetByID(c.Request.Context(), mentorID)
	if err != nil {
		if errors.Is(err, mentor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mentor not found"})
			return
		}
		logger.Error("Failed to fetch mentor for availability", zap.String("id", mentorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mentor"})
		return
	}

	av, err := h.Availability.GetAvailability(c.Request.Context(), *m, dateFrom, dateTo)
	if err != nil {
		logger.Error("Failed to resolve availability",
			zap.String("mentorId", mentorID),
			zap.String("dateFrom", dateFrom),
			zap.String("dateTo", dateTo),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"availability": av,
		"incomplete":   av.SkippedCells > 0,
	})
}
