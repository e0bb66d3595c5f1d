package utils

import (
	"errors" // Error wrapping and inspection
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Token verification failure kinds, mapped to distinct responses by the middleware
var (
	ErrTokenExpired = errors.New("token has expired") // Token past its expiry
	ErrTokenInvalid = errors.New("invalid token")     // Malformed or badly signed token
)

// JWT Claims carrying the authenticated user's identity
type Claims struct {
	UserID               uint   `json:"id"`       // User ID
	Username             string `json:"username"` // Username
	Email                string `json:"email"`    // Email address
	jwt.RegisteredClaims        // Standard JWT claims
}

// TokenTTL is the fixed token lifetime; expiry is the only termination mechanism
const TokenTTL = 24 * time.Hour

// GenerateJWT creates a signed token carrying the user's identity claims
func GenerateJWT(userID uint, username, email, secret string) (string, error) {
	claims := Claims{
		UserID:   userID,   // Custom claim for user ID
		Username: username, // Custom claim for username
		Email:    email,    // Custom claim for email
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)), // Token expires in 24 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),               // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string.
// Failures are classified as ErrTokenExpired, ErrTokenInvalid or a generic error.
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired // Expired token
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, ErrTokenInvalid // Malformed or badly signed token
		default:
			return nil, err // Generic verification failure
		}
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	return nil, ErrTokenInvalid // Token parsed but not valid
}
