package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

type EmailData struct {
	Name    string
	Message string
	OrderID uint
}

var orderEmailTemplate = template.Must(template.New("order").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif;">
    <p>Hello {{.Name}},</p>
    <p>{{.Message}}</p>
    <p>Order reference: #{{.OrderID}}</p>
  </body>
</html>`))

// Mailer sends HTML mail through an authenticated SMTP relay.
type Mailer struct {
	From     string
	Password string
	Host     string
	Address  string
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (m Mailer) Enabled() bool {
	return m.From != "" && m.Address != ""
}

func (m Mailer) SendEmail(emailTo string, emailSubject string, data EmailData) error {
	var body bytes.Buffer
	if err := orderEmailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.From,
		emailTo,
		emailSubject,
		body.String(),
	)

	var auth smtp.Auth
	if m.Password != "" {
		auth = smtp.PlainAuth("", m.From, m.Password, m.Host)
	}

	if err := smtp.SendMail(m.Address, auth, m.From, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
