package api

import (
	"net/http" // HTTP status codes
	"regexp"   // Email shape validation
	"strings"  // Trimming of submitted values

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Mailer dispatches one formatted contact form message
type Mailer interface {
	SendContactMessage(name, email, message string) error
}

// emailRegex is a minimal email-shape check
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactRequest is the contact form payload
type ContactRequest struct {
	Name    string `json:"name"`    // Submitter's name
	Email   string `json:"email"`   // Submitter's email
	Message string `json:"message"` // Message body
}

// ContactHandler validates the contact form and sends exactly one email on
// success. Email failures surface as a generic error distinct from validation.
func ContactHandler(mailer Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Message == "" {
			respondError(c, http.StatusBadRequest, "MISSING_FIELDS", "Všechna pole jsou povinná")
			return
		}
		// Validate name is not just whitespace
		if strings.TrimSpace(req.Name) == "" {
			respondError(c, http.StatusBadRequest, "INVALID_NAME", "Jméno nesmí být prázdné")
			return
		}
		// Validate email format
		if !emailRegex.MatchString(req.Email) {
			respondError(c, http.StatusBadRequest, "INVALID_EMAIL", "Neplatný formát emailu")
			return
		}
		// Validate message is not just whitespace
		if strings.TrimSpace(req.Message) == "" {
			respondError(c, http.StatusBadRequest, "INVALID_MESSAGE", "Zpráva nesmí být prázdná")
			return
		}
		// Send one formatted email with trimmed values
		if err := mailer.SendContactMessage(
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Email),
			strings.TrimSpace(req.Message),
		); err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Contact form email failed")
			respondError(c, http.StatusInternalServerError, "EMAIL_SEND_FAILED", "Nepodařilo se odeslat zprávu. Zkuste to prosím později.")
			return
		}
		respondData(c, http.StatusOK, gin.H{"message": "Zpráva byla úspěšně odeslána"})
	}
}
