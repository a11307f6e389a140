package handlers

import (
	"errors"
	"net/http"

	"mentorhub/models"
	"mentorhub/services/mentor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MentorHandler exposes mentor account endpoints.
type MentorHandler struct {
	Service mentor.Service
}

func (h *MentorHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var reg models.MentorRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		logger.Error("Invalid mentor registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, mentor.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to register mentor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register mentor"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MentorHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, mentor.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error("Mentor login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MentorHandler) LogoutHandler(c *gin.Context) {
	mentorID := c.GetString("mentorID")
	if err := h.Service.RevokeAuthToken(c.Request.Context(), mentorID); err != nil {
		getLogger(c).Error("Failed to revoke mentor session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetMentorsHandler returns all mentors. Public discovery endpoint.
func (h *MentorHandler) GetMentorsHandler(c *gin.Context) {
	logger := getLogger(c)

	mentors, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve mentors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get mentors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentors": mentors})
}

func (h *MentorHandler) GetMentorHandler(c *gin.Context) {
	id := c.Param("id")

	m, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mentor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mentor not found"})
			return
		}
		getLogger(c).Error("Failed to fetch mentor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mentor"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MentorHandler) UpdateMentorHandler(c *gin.Context) {
	logger := getLogger(c)
	mentorID := c.GetString("mentorID")

	var updates models.MentorRegistration
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	m, err := h.Service.Update(c.Request.Context(), mentorID, updates)
	if err != nil {
		logger.Error("Failed to update mentor", zap.String("id", mentorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mentor"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MentorHandler) DeleteMentorHandler(c *gin.Context) {
	mentorID := c.GetString("mentorID")
	if err := h.Service.Delete(c.Request.Context(), mentorID); err != nil {
		getLogger(c).Error("Failed to delete mentor", zap.String("id", mentorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete mentor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mentor deleted"})
}
