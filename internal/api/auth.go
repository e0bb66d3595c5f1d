package api

import (
	"net/http"                          // HTTP status codes
	"portfolio_backend/internal/domain" // Importing domain models
	"portfolio_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username"` // Username
	Password string `json:"password"` // Password
}

// LoginHandler authenticates a user and returns a JWT token with user info.
// Wrong username and wrong password produce the same response, never a token.
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			// Missing or unparsable credentials
			respondError(c, http.StatusBadRequest, "MISSING_CREDENTIALS", "Uživatelské jméno a heslo jsou povinné")
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
			// Unknown username is indistinguishable from a wrong password
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Neplatné přihlašovací údaje")
			return
		}
		// Compare provided password with stored hash (constant-time)
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Neplatné přihlašovací údaje")
			return
		}
		// Generate JWT token carrying the user's identity
		token, err := utils.GenerateJWT(user.ID, user.Username, user.Email, jwtSecret)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to generate token")
			respondError(c, http.StatusInternalServerError, "SERVER_ERROR", "Interní chyba serveru")
			return
		}
		// Return the token and user info in the response
		respondData(c, http.StatusOK, gin.H{
			"token": token,
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
			},
		})
	}
}
