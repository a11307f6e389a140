package handlers

import (
	"errors"
	"net/http"

	"mentorhub/models"
	"mentorhub/services/matching"
	"mentorhub/services/mentee"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MenteeHandler exposes mentee account and matching endpoints.
type MenteeHandler struct {
	Service mentee.Service
	Matcher matching.MatchService
}

func (h *MenteeHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var reg models.MenteeRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, mentee.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to register mentee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register mentee"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MenteeHandler) LoginHandler(c *gin.Context) {
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
		if errors.Is(err, mentee.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error("Mentee login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MenteeHandler) LogoutHandler(c *gin.Context) {
	menteeID := c.GetString("menteeID")
	if err := h.Service.RevokeAuthToken(c.Request.Context(), menteeID); err != nil {
		getLogger(c).Error("Failed to revoke mentee session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *MenteeHandler) GetProfileHandler(c *gin.Context) {
	menteeID := c.GetString("menteeID")

	m, err := h.Service.GetByID(c.Request.Context(), menteeID)
	if err != nil {
		if errors.Is(err, mentee.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mentee not found"})
			return
		}
		getLogger(c).Error("Failed to fetch mentee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mentee"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MenteeHandler) UpdateProfileHandler(c *gin.Context) {
	menteeID := c.GetString("menteeID")

	var updates models.MenteeRegistration
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	m, err := h.Service.Update(c.Request.Context(), menteeID, updates)
	if err != nil {
		getLogger(c).Error("Failed to update mentee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mentee"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MenteeHandler) DeleteAccountHandler(c *gin.Context) {
	menteeID := c.GetString("menteeID")
	if err := h.Service.Delete(c.Request.Context(), menteeID); err != nil {
		getLogger(c).Error("Failed to delete mentee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// MatchMentorsHandler ranks mentors against the mentee's interest set.
func (h *MenteeHandler) MatchMentorsHandler(c *gin.Context) {
	logger := getLogger(c)
	menteeID := c.GetString("menteeID")

	m, err := h.Service.GetByID(c.Request.Context(), menteeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mentee not found"})
		return
	}

	matches, err := h.Matcher.MatchMentors(c.Request.Context(), *m)
	if err != nil {
		logger.Error("Failed to match mentors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to match mentors", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
