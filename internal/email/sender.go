// Package email sends contact form messages through an SMTP relay.
package email

import (
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending contact form emails via SMTP
type Sender struct {
	host     string // SMTP server host
	port     string // SMTP server port
	username string // SMTP username
	password string // SMTP password
	from     string // Sender address
	to       string // Recipient of contact messages
}

// NewSender creates a new email sender
func NewSender(host, port, username, password, from, to string) *Sender {
	return &Sender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

// usesImplicitTLS reports whether the port expects a TLS session from the
// first byte (SMTPS) instead of plaintext with optional STARTTLS
func usesImplicitTLS(port string) bool {
	return port == "465"
}

// newContactEmail builds one formatted contact form email with Reply-To
// set to the submitter so replies go straight back
func (s *Sender) newContactEmail(name, fromEmail, message string) *email.Email {
	e := email.NewEmail()
	e.From = s.from
	e.To = []string{s.to}
	e.ReplyTo = []string{fromEmail}
	e.Subject = fmt.Sprintf("Nová zpráva z kontaktního formuláře od %s", name)

	// Plain text body
	e.Text = []byte(fmt.Sprintf("Jméno: %s\nEmail: %s\n\nZpráva:\n%s", name, fromEmail, message))

	// HTML body, user input escaped
	e.HTML = []byte(fmt.Sprintf(
		"<h2>Nová zpráva z kontaktního formuláře</h2>"+
			"<p><strong>Jméno:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<h3>Zpráva:</h3>"+
			"<p>%s</p>",
		html.EscapeString(name),
		html.EscapeString(fromEmail),
		strings.ReplaceAll(html.EscapeString(message), "\n", "<br>"),
	))
	return e
}

// SendContactMessage sends one contact form email. Port 465 speaks TLS from
// the first byte, other ports start in plaintext and may upgrade via STARTTLS.
func (s *Sender) SendContactMessage(name, fromEmail, message string) error {
	e := s.newContactEmail(name, fromEmail, message)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	var err error
	if usesImplicitTLS(s.port) {
		err = e.SendWithTLS(addr, auth, &tls.Config{ServerName: s.host})
	} else {
		err = e.Send(addr, auth)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"to":    s.to,
			"error": err.Error(),
		}).Error("Failed to send contact email")
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"to":      s.to,
		"subject": e.Subject,
	}).Info("Contact email sent")
	return nil
}
