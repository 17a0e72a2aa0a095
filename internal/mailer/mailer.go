package mailer

import (
	"fmt"
	"net/smtp"

	"SeniorCompanion_Backend/internal/config"
)

// Mailer is the outbound notification collaborator used by the
// background sweeps.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text mail over SMTP.
type SMTPMailer struct {
	config *config.EmailConfig
}

func NewSMTPMailer(cfg *config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{config: cfg}
}

// Send delivers a single plain-text email.
func (m *SMTPMailer) Send(to, subject, body string) error {
	// Check if credentials are set
	if m.config.SMTPUsername == "" || m.config.SMTPPassword == "" {
		return fmt.Errorf("email credentials not configured")
	}

	auth := smtp.PlainAuth("", m.config.SMTPUsername, m.config.SMTPPassword, m.config.SMTPHost)

	fromEmail := m.config.FromEmail
	if fromEmail == "" {
		fromEmail = m.config.SMTPUsername
	}

	message := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		m.config.FromName, fromEmail, to, subject, body))

	addr := m.config.SMTPHost + ":" + m.config.SMTPPort
	if err := smtp.SendMail(addr, auth, fromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
