// Package service contains outbound integrations used by the handlers
package service

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer is what the handlers depend on, so tests can swap in a fake
// instead of dialing SMTP.
type Mailer interface {
	SendPasswordReset(to, resetToken string) error
}

type SMTPMailer struct {
	Host    string
	Port    int
	From    string
	Pass    string
	BaseURL string
}

func NewSMTPMailer(host string, port int, from, pass, baseURL string) *SMTPMailer {
	return &SMTPMailer{
		Host:    host,
		Port:    port,
		From:    from,
		Pass:    pass,
		BaseURL: baseURL,
	}
}

// SendPasswordReset mails out the reset link carrying the raw token.
func (m *SMTPMailer) SendPasswordReset(to, resetToken string) error {
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", m.BaseURL, resetToken)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset - Advice Globe")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Password Reset Request\n\n"+
			"You have requested to reset your password for Advice Globe.\n\n"+
			"Visit this link to reset your password: %s\n\n"+
			"If you did not request this password reset, please ignore this email.\n\n"+
			"This link will expire in 1 hour for security reasons.\n\n"+
			"Best regards,\nAdvice Globe Team", resetURL))
	msg.AddAlternative("text/html", fmt.Sprintf(
		"<h2>Password Reset Request</h2>"+
			"<p>You have requested to reset your password for Advice Globe.</p>"+
			"<p>Click <a href='%s'>here</a> to reset your password.</p>"+
			"<p>If you did not request this password reset, please ignore this email.</p>"+
			"<p>This link will expire in 1 hour for security reasons.</p>"+
			"<p>Best regards,<br>Advice Globe Team</p>", resetURL))

	d := gomail.NewDialer(m.Host, m.Port, m.From, m.Pass)

	if err := d.DialAndSend(msg); err != nil {
		return err
	}

	return nil
}
