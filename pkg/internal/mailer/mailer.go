// Package mailer delivers rendered notification mail through an SMTP relay.
package mailer

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/greengivers/nursery/pkg/configs"
	nlog "github.com/greengivers/nursery/pkg/log"
)

// SendResult reports the outcome of one delivery attempt.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Mailer sends HTML mail to a single recipient.
type Mailer interface {
	// Send delivers one message. A relay failure is returned as an error,
	// the result carries the generated message id on success.
	Send(ctx context.Context, to, subject, htmlBody string) (*SendResult, error)
	// Verify dials the relay without sending anything.
	Verify(ctx context.Context) error
	// From reports the configured sender address.
	From() string
}

// SMTPMailer is the go-mail backed relay client.
type SMTPMailer struct {
	cfg    *configs.MailConfig
	client *gomail.Client
}

// NewSMTP builds a relay client for the configured service. Credentials are
// optional so a local debug relay works without auth.
func NewSMTP(cfg *configs.MailConfig) (*SMTPMailer, error) {
	host, port := cfg.Endpoint()

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTimeout(time.Duration(cfg.Timeout) * time.Second),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}

	return &SMTPMailer{cfg: cfg, client: client}, nil
}

// Send delivers one HTML message to a single recipient.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) (*SendResult, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.Sender()); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetGenHeader(gomail.HeaderXMailer, "nursery/"+configs.AppVersion)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)
	msg.SetMessageID()

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		nlog.Logger().Error().Err(err).Str("to", to).Str("subject", subject).Msg("mail delivery failed")
		return nil, fmt.Errorf("send mail: %w", err)
	}

	id := msg.GetMessageID()
	nlog.Logger().Info().Str("to", to).Str("subject", subject).Str("message_id", id).Msg("mail sent")

	return &SendResult{Success: true, MessageID: id}, nil
}

// Verify dials and greets the relay, then closes the connection.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("dial mail relay: %w", err)
	}

	return m.client.Close()
}

// From reports the configured sender address.
func (m *SMTPMailer) From() string {
	return m.cfg.Sender()
}
