package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	appconfig "mwonto_studio/internal/infrastructure/config"
	"mwonto_studio/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

var (
	ErrMissingSMTPHost        = errors.New("missing SMTP_HOST")
	ErrMissingSMTPCredentials = errors.New("missing EMAIL_USER / EMAIL_PASSWORD")
)

// SMTPMailer submits messages to an SMTP relay (smtp.gmail.com:587 in the
// studio's setup).
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg appconfig.Mail) (*SMTPMailer, error) {
	if cfg.SMTPHost == "" {
		return nil, ErrMissingSMTPHost
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrMissingSMTPCredentials
	}

	client, err := gomail.NewClient(cfg.SMTPHost,
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("building smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg interfaces.MailMessage) error {
	out := gomail.NewMsg()
	if err := out.From(m.from); err != nil {
		return fmt.Errorf("smtp from address: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return fmt.Errorf("smtp recipient: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)

	if a := msg.Attachment; a != nil {
		if err := out.AttachReader(a.Filename, bytes.NewReader(a.Content)); err != nil {
			return fmt.Errorf("smtp attachment: %w", err)
		}
	}

	// Dial/auth failures carry the transport diagnostics verbatim.
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
