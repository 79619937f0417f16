// Package sendgrid wraps the SendGrid v3 dynamic-template API behind a narrow
// send surface.
package sendgrid

import (
	"context"
	"errors"
	"fmt"

	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/autonovo/autonovo-backend/pkg/config"
)

// ErrMissingAPIKey signals that the provider credential is absent from the
// process environment. Callers surface this as a configuration failure.
var ErrMissingAPIKey = errors.New("sendgrid api key is not configured")

// Message is one templated transactional email.
type Message struct {
	TemplateID string
	Subject    string
	ToEmail    string
	ToName     string
	Variables  map[string]any
}

// Ack echoes the provider acknowledgment back to callers.
type Ack struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body,omitempty"`
	MessageID  string `json:"message_id,omitempty"`
}

// Sender is the send surface the dispatcher depends on.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Ack, error)
}

// Client talks to SendGrid using the configured sender identity.
type Client struct {
	cfg config.SendgridConfig
}

// NewClient builds a SendGrid client. The API key is validated per send, not
// here, so a missing credential fails the invocation rather than the boot.
func NewClient(cfg config.SendgridConfig) *Client {
	return &Client{cfg: cfg}
}

// Send submits one dynamic-template email and returns the provider response.
func (c *Client) Send(ctx context.Context, msg Message) (*Ack, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if msg.ToEmail == "" {
		return nil, errors.New("recipient email is required")
	}
	if msg.TemplateID == "" {
		return nil, errors.New("template id is required")
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(c.cfg.FromName, c.cfg.FromEmail))
	m.SetTemplateID(msg.TemplateID)

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(msg.ToName, msg.ToEmail))
	if msg.Subject != "" {
		p.Subject = msg.Subject
	}
	for key, value := range msg.Variables {
		p.SetDynamicTemplateData(key, value)
	}
	m.AddPersonalizations(p)

	client := sg.NewSendClient(c.cfg.APIKey)
	resp, err := client.SendWithContext(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("sendgrid send: %w", err)
	}
	ack := &Ack{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		ack.MessageID = ids[0]
	}
	if resp.StatusCode >= 400 {
		return ack, fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return ack, nil
}
