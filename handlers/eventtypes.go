package handlers

import (
	"net/http"

	"mentorhub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *MentorHandler) CreateEventTypeHandler(c *gin.Context) {
	logger := getLogger(c)
	mentorID := c.GetString("mentorID")

	var et models.EventType
	if err := c.ShouldBindJSON(&et); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	et.MentorID = mentorID

	if err := h.Service.CreateEventType(c.Request.Context(), &et); err != nil {
		logger.Error("Failed to create event type", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create event type", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, et)
}

func (h *MentorHandler) UpdateEventTypeHandler(c *gin.Context) {
	logger := getLogger(c)
	mentorID := c.GetString("mentorID")

	var et models.EventType
	if err := c.ShouldBindJSON(&et); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	et.ID = c.Param("id")
	et.MentorID = mentorID

	if err := h.Service.UpdateEventType(c.Request.Context(), &et); err != nil {
		logger.Error("Failed to update event type", zap.String("id", et.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update event type", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, et)
}

func (h *MentorHandler) DeleteEventTypeHandler(c *gin.Context) {
	mentorID := c.GetString("mentorID")
	id := c.Param("id")

	if err := h.Service.DeleteEventType(c.Request.Context(), mentorID, id); err != nil {
		getLogger(c).Error("Failed to delete event type", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event type deleted"})
}

func (h *MentorHandler) GetEventTypesHandler(c *gin.Context) {
	mentorID := c.GetString("mentorID")

	eventTypes, err := h.Service.GetEventTypes(c.Request.Context(), mentorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"eventTypes": eventTypes})
}

// ImportEventTypesHandler pulls the mentor's event types from the remote
// scheduling account and stores any that are not yet known locally.
func (h *MentorHandler) ImportEventTypesHandler(c *gin.Context) {
	logger := getLogger(c)
	mentorID := c.GetString("mentorID")

	imported, err := h.Service.ImportEventTypes(c.Request.Context(), mentorID)
	if err != nil {
		logger.Error("Failed to import event types", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to import event types", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}
