package request

import (
	"mwonto_studio/internal/domain/entities"
)

type LineItemRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Quantity    string `json:"quantity"`
	Cents       string `json:"cents"`
}

type TaskRequest struct {
	Name         string            `json:"name"`
	Professional string            `json:"professional"`
	Duration     string            `json:"duration"`
	Breakdowns   []LineItemRequest `json:"breakdowns"`
}

// DocumentCreateRequest carries a document exactly as composed in the
// editor. Row values stay strings; the server parses them leniently and
// recomputes the total, ignoring any client-side figure.
type DocumentCreateRequest struct {
	Kind         string `json:"kind" binding:"required"`
	ClientName   string `json:"client_name"`
	ProjectTitle string `json:"project_title"`
	Date         string `json:"date"`

	Items []LineItemRequest `json:"items"`
	Tasks []TaskRequest     `json:"tasks"`
	Notes []string          `json:"notes"`

	MSValue       string `json:"ms_value"`
	ReceivedBy    string `json:"received_by"`
	ReceiverName  string `json:"receiver_name"`
	SignatureDate string `json:"signature_date"`
	SignatureURL  string `json:"signature_url"`

	Status string `json:"status"`
}

func (r DocumentCreateRequest) ToEntity() entities.Document {
	return entities.Document{
		Kind:          entities.DocumentKind(r.Kind),
		ClientName:    r.ClientName,
		ProjectTitle:  r.ProjectTitle,
		Date:          r.Date,
		Items:         toLineItems(r.Items),
		Tasks:         toTasks(r.Tasks),
		Notes:         r.Notes,
		MSValue:       r.MSValue,
		ReceivedBy:    r.ReceivedBy,
		ReceiverName:  r.ReceiverName,
		SignatureDate: r.SignatureDate,
		SignatureURL:  r.SignatureURL,
		Status:        entities.DocumentStatus(r.Status),
	}
}

// SendDocumentRequest asks for a stored document to be emailed as PDF.
type SendDocumentRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		out[i] = entities.LineItem{
			Description: it.Description,
			Amount:      it.Amount,
			Quantity:    it.Quantity,
			Cents:       it.Cents,
		}
	}
	return out
}

func toTasks(tasks []TaskRequest) []entities.Task {
	if len(tasks) == 0 {
		return nil
	}
	out := make([]entities.Task, len(tasks))
	for i, t := range tasks {
		out[i] = entities.Task{
			Name:         t.Name,
			Professional: t.Professional,
			Duration:     t.Duration,
			Breakdowns:   toLineItems(t.Breakdowns),
		}
	}
	return out
}
