package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPProvider delivers notification emails over plain SMTP, for
// self-hosted deployments without a Resend account.
type SMTPProvider struct {
	host     string
	port     string
	username string
	password string
	from     string
	siteName string
	renderer *EmailRenderer
}

func NewSMTPProvider(host, port, username, password, from, siteName string, renderer *EmailRenderer) *SMTPProvider {
	return &SMTPProvider{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		siteName: siteName,
		renderer: renderer,
	}
}

func (p *SMTPProvider) Name() string { return "smtp" }

func (p *SMTPProvider) Send(ctx context.Context, payload Payload) error {
	subject, body, err := p.renderer.Render(payload)
	if err != nil {
		return err
	}

	to := payload.Recipient()
	auth := smtp.PlainAuth("", p.username, p.password, p.host)
	addr := fmt.Sprintf("%s:%s", p.host, p.port)

	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s <%s>\r\n"+
		"Subject: %s\r\n"+
		"MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n"+
		"\r\n%s", to, p.siteName, p.from, subject, body))

	return smtp.SendMail(addr, auth, p.from, []string{to}, msg)
}
