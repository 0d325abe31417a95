package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendProvider delivers notification emails through the Resend API.
type ResendProvider struct {
	client   *resend.Client
	from     string
	siteName string
	renderer *EmailRenderer
}

func NewResendProvider(apiKey, from, siteName string, renderer *EmailRenderer) *ResendProvider {
	return &ResendProvider{
		client:   resend.NewClient(apiKey),
		from:     from,
		siteName: siteName,
		renderer: renderer,
	}
}

func (p *ResendProvider) Name() string { return "resend" }

func (p *ResendProvider) Send(ctx context.Context, payload Payload) error {
	subject, body, err := p.renderer.Render(payload)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", p.siteName, p.from),
		To:      []string{payload.Recipient()},
		Subject: subject,
		Html:    body,
	}

	_, err = p.client.Emails.Send(params)
	return err
}
