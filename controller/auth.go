package controller

import (
	"net/http"

	"archviz/middlewares"
	"archviz/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login exchanges the admin password for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"detail": "password is required",
		})
		return
	}

	if err := utils.ComparePassword(req.Password, h.auth.AdminPasswordHash); err != nil {
		log.WithError(err).Warn("admin login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"detail": "invalid password",
		})
		return
	}

	token, err := utils.SignedToken(h.auth.Secret, "admin", utils.RoleAdmin, h.auth.TokenTTL)
	if err != nil {
		fail(c, err, "")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.TokenCookie, token, int(h.auth.TokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int(h.auth.TokenTTL.Seconds()),
	})
}

// Logout expires the token cookie. Bearer headers stay valid until expiry.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
