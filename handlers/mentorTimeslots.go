package handlers

import (
	"net/http"

	"mentorhub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *MentorHandler) SetupTimeslotsHandler(c *gin.Context) {
	logger := getLogger(c)
	mentorID := c.GetString("mentorID")

	var req models.SetupTimeslotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid timeslot setup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slots, err := h.Service.SetupTimeslots(c.Request.Context(), mentorID, req)
	if err != nil {
		logger.Error("Failed to set up timeslots", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to set up timeslots", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Timeslot setup successful; mentor status updated to active",
		"timeslots": slots,
	})
}

// StarterScheduleHandler seeds a default week for mentors who have not
// authored any slots yet.
func (h *MentorHandler) StarterScheduleHandler(c *gin.Context) {
	logger := getLogger(c)
	mentorID := c.GetString("mentorID")

	slots, err := h.Service.StarterSchedule(c.Request.Context(), mentorID)
	if err != nil {
		logger.Error("Failed to generate starter schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate starter schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeslots": slots})
}

func (h *MentorHandler) GetTimeslotsHandler(c *gin.Context) {
	mentorID := c.GetString("mentorID")

	slots, err := h.Service.GetTimeslots(c.Request.Context(), mentorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timeslots", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeslots": slots})
}

func (h *MentorHandler) DeleteTimeslotHandler(c *gin.Context) {
	mentorID := c.GetString("mentorID")
	slotID := c.Param("slotId")

	if err := h.Service.DeleteTimeslot(c.Request.Context(), mentorID, slotID); err != nil {
		getLogger(c).Error("Failed to delete timeslot", zap.String("slotId", slotID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete timeslot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timeslot deleted"})
}
