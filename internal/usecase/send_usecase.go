package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"mwonto_studio/internal/domain/entities"
	"mwonto_studio/internal/usecase/interfaces"
)

var ErrInvalidRecipient = errors.New("invalid recipient email")

// ISendUseCase emails one stored document to a client, with the rendered
// PDF attached.

type ISendUseCase interface {
	SendDocument(ctx context.Context, id string, recipient string) error
}

type SendUseCase struct {
	repo     interfaces.IDocumentRepository
	exporter IExportUseCase
	mailer   interfaces.IMailer
	fromName string
}

var _ ISendUseCase = (*SendUseCase)(nil)

func NewSendUseCase(repo interfaces.IDocumentRepository, exporter IExportUseCase, mailer interfaces.IMailer, fromName string) *SendUseCase {
	return &SendUseCase{repo: repo, exporter: exporter, mailer: mailer, fromName: fromName}
}

func (u *SendUseCase) SendDocument(ctx context.Context, id string, recipient string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" || !strings.Contains(recipient, "@") {
		return ErrInvalidRecipient
	}

	doc, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if doc.ID == "" {
		return ErrDocumentNotFound
	}

	export, err := u.exporter.ExportPDF(ctx, doc.ID)
	if err != nil {
		return err
	}

	msg := interfaces.MailMessage{
		To:      recipient,
		Subject: subjectFor(doc),
		HTMLBody: fmt.Sprintf(
			"<p>Dear %s,</p><p>Please find attached the %s for %s.</p><p>Best regards,<br>%s</p>",
			clientGreeting(doc), doc.Kind, doc.ProjectTitle, u.fromName,
		),
		Attachment: &interfaces.MailAttachment{
			Filename:    export.Filename,
			ContentType: "application/pdf",
			Content:     export.Data,
		},
	}

	if err := u.mailer.Send(ctx, msg); err != nil {
		log.Printf("[send][usecase] mail failed id=%s to=%s err=%v", doc.ID, recipient, err)
		return fmt.Errorf("sending document %s: %w", doc.ID, err)
	}
	log.Printf("[send][usecase] sent id=%s number=%s to=%s", doc.ID, doc.Number, recipient)
	return nil
}

func subjectFor(d entities.Document) string {
	title := strings.TrimSpace(d.ProjectTitle)
	if title == "" {
		title = d.Number
	}
	switch d.Kind {
	case entities.KindQuotation:
		return "Quotation: " + title
	case entities.KindInvoice:
		return "Invoice: " + title
	case entities.KindReceipt:
		return "Receipt: " + title
	}
	return title
}

func clientGreeting(d entities.Document) string {
	if name := strings.TrimSpace(d.ClientName); name != "" {
		return name
	}
	return "Client"
}
