package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"mentorhub/config"
	bookingRepo "mentorhub/database/repository/booking"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes platform reporting endpoints.
type AdminHandler struct {
	Bookings bookingRepo.Repository
}

// LoginHandler exchanges the configured admin credential for an admin token
// with an active session. Without ADMIN_EMAIL/ADMIN_PASSWORD in the
// environment the admin surface stays closed.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !adminCredentialsValid(body.Email, body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken("admin", body.Email, "admin", utils.AuthSessionTTL)
	if err != nil {
		logger.Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), "admin", utils.HashToken(token)); err != nil {
		logger.Error("Failed to save admin session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func adminCredentialsValid(email, password string) bool {
	cfgEmail := config.AppConfig.AdminEmail
	cfgPassword := config.AppConfig.AdminPassword
	if cfgEmail == "" || cfgPassword == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(cfgEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfgPassword)) == 1
	return emailOK && passwordOK
}

// BookingStatsHandler aggregates per-mentor booking counts and revenue.
func (h *AdminHandler) BookingStatsHandler(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.Bookings.StatsByMentor(c.Request.Context())
	if err != nil {
		logger.Error("Failed to aggregate booking stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate booking stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// UpcomingBookingsHandler counts confirmed sessions from today onward.
func (h *AdminHandler) UpcomingBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	from := c.DefaultQuery("from", time.Now().Format(utils.DateLayout))
	count, err := h.Bookings.UpcomingCount(c.Request.Context(), from)
	if err != nil {
		logger.Error("Failed to count upcoming bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count upcoming bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "upcoming": count})
}
