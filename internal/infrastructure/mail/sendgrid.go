package mail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	appconfig "mwonto_studio/internal/infrastructure/config"
	"mwonto_studio/internal/usecase/interfaces"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrMissingSendgridKey = errors.New("missing SENDGRID_API_KEY")

type SendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

var _ interfaces.IMailer = (*SendgridMailer)(nil)

func NewSendgridMailer(cfg appconfig.Mail) (*SendgridMailer, error) {
	if cfg.SendgridKey == "" {
		return nil, ErrMissingSendgridKey
	}
	return &SendgridMailer{
		client: sendgrid.NewSendClient(cfg.SendgridKey),
		from:   sgmail.NewEmail("", cfg.From),
	}, nil
}

func (m *SendgridMailer) Send(ctx context.Context, msg interfaces.MailMessage) error {
	out := sgmail.NewV3Mail()
	out.SetFrom(m.from)

	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail("", msg.To))
	out.AddPersonalizations(p)
	out.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))

	if a := msg.Attachment; a != nil {
		att := sgmail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		out.AddAttachment(att)
	}

	resp, err := m.client.SendWithContext(ctx, out)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
