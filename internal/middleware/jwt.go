package middleware

import (
	"errors"                           // Error kind inspection
	"net/http"                         // HTTP status codes
	"portfolio_backend/internal/utils" // JWT utility functions
	"strings"                          // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// JWTAuthMiddleware validates JWT tokens and attaches the user's identity
// to the request context. Distinct token failures map to distinct error codes.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "NO_TOKEN", "message": "Přístupový token nebyl poskytnut"},
			})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// Map verification failure kinds to distinct codes
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   gin.H{"code": "TOKEN_EXPIRED", "message": "Platnost přístupového tokenu vypršela"},
				})
			case errors.Is(err, utils.ErrTokenInvalid):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   gin.H{"code": "INVALID_TOKEN", "message": "Neplatný přístupový token"},
				})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   gin.H{"code": "AUTH_ERROR", "message": "Chyba při ověřování tokenu"},
				})
			}
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context
		c.Set("claims", claims)        // Store full identity claims in context
		c.Next()                       // Proceed to the next handler
	}
}
