package interfaces

import "context"

type MailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type MailMessage struct {
	To         string
	Subject    string
	HTMLBody   string
	Attachment *MailAttachment
}

// IMailer submits one message to the outbound relay. Transport-level
// failures (connection refusal, auth) are returned verbatim, wrapped.
type IMailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
