package mail

import (
	"context"
	"log"

	"mwonto_studio/internal/usecase/interfaces"
)

// ConsoleMailer logs outbound messages instead of delivering them. Used in
// development and tests.
type ConsoleMailer struct{}

var _ interfaces.IMailer = (*ConsoleMailer)(nil)

func NewConsoleMailer() *ConsoleMailer { return &ConsoleMailer{} }

func (m *ConsoleMailer) Send(_ context.Context, msg interfaces.MailMessage) error {
	attachment := "none"
	if msg.Attachment != nil {
		attachment = msg.Attachment.Filename
	}
	log.Printf("[mail][console] to=%s subject=%q attachment=%s body=%q", msg.To, msg.Subject, attachment, msg.HTMLBody)
	return nil
}
