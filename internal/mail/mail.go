package mail

import (
	"fmt"
	"net/smtp"

	"portfolio-server/internal/config"
)

// Mailer delivers contact form submissions over SMTP.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendContact forwards a contact form submission to the configured inbox.
// Returns an error when SMTP credentials are not configured.
func (m *Mailer) SendContact(name, email, message string) error {
	if m.cfg.User == "" || m.cfg.Password == "" {
		return fmt.Errorf("smtp credentials not configured")
	}
	if m.cfg.To == "" {
		return fmt.Errorf("contact recipient not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf("New contact form submission:\n\nName: %s\nEmail: %s\nMessage:\n%s\n", name, email, message)

	msg := []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, msg)
}
