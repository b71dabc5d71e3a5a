package service

import (
	"fmt"
	"net/smtp"

	"github.com/abidnoul/portfolio/internal/config"
)

// EmailService sends the owner-notification mail for new contact
// submissions over plain SMTP.
type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// Configured reports whether SMTP settings are present.
func (s *EmailService) Configured() bool {
	return s.cfg.SMTPHost != "" && s.cfg.AdminEmail != ""
}

// SendContactNotification mails the site owner about a new submission.
func (s *EmailService) SendContactNotification(n ContactNotification) error {
	if !s.Configured() {
		return fmt.Errorf("smtp not configured")
	}

	from := s.cfg.SMTPFrom
	if from == "" {
		from = s.cfg.SMTPUser
	}

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: New contact message: %s\r\n\r\n%s <%s> sent a message through the contact form (submission #%d).\r\n",
		from, s.cfg.AdminEmail, n.Subject, n.Name, n.Email, n.ContactID,
	)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	return smtp.SendMail(addr, auth, from, []string{s.cfg.AdminEmail}, []byte(body))
}
