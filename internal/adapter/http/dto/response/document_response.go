package response

import (
	"time"

	"mwonto_studio/internal/domain/entities"
)

type LineItemResponse struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Quantity    string `json:"quantity,omitempty"`
	Cents       string `json:"cents,omitempty"`
}

type TaskResponse struct {
	Name         string             `json:"name"`
	Professional string             `json:"professional"`
	Duration     string             `json:"duration"`
	Breakdowns   []LineItemResponse `json:"breakdowns"`
}

type DocumentResponse struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Number       string `json:"number"`
	ClientName   string `json:"client_name"`
	ProjectTitle string `json:"project_title"`
	Date         string `json:"date"`

	Items []LineItemResponse `json:"items,omitempty"`
	Tasks []TaskResponse     `json:"tasks,omitempty"`
	Notes []string           `json:"notes,omitempty"`

	MSValue       string `json:"ms_value,omitempty"`
	ReceivedBy    string `json:"received_by,omitempty"`
	ReceiverName  string `json:"receiver_name,omitempty"`
	SignatureDate string `json:"signature_date,omitempty"`
	SignatureURL  string `json:"signature_url,omitempty"`

	// TotalAmount is the numeric value; TotalDisplay is the fixed
	// two-decimal rendering shown on the document.
	TotalAmount  float64 `json:"total_amount"`
	TotalDisplay string  `json:"total_display"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:            d.ID,
		Kind:          string(d.Kind),
		Number:        d.Number,
		ClientName:    d.ClientName,
		ProjectTitle:  d.ProjectTitle,
		Date:          d.Date,
		Items:         fromLineItems(d.Items),
		Tasks:         fromTasks(d.Tasks),
		Notes:         d.Notes,
		MSValue:       d.MSValue,
		ReceivedBy:    d.ReceivedBy,
		ReceiverName:  d.ReceiverName,
		SignatureDate: d.SignatureDate,
		SignatureURL:  d.SignatureURL,
		TotalAmount:   d.TotalAmount.Float64(),
		TotalDisplay:  d.TotalAmount.String(),
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = FromDocument(d)
	}
	return out
}

// SendDocumentResponse acknowledges a dispatched email.
type SendDocumentResponse struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Filename  string `json:"filename"`
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	if len(items) == 0 {
		return nil
	}
	out := make([]LineItemResponse, len(items))
	for i, it := range items {
		out[i] = LineItemResponse{
			Description: it.Description,
			Amount:      it.Amount,
			Quantity:    it.Quantity,
			Cents:       it.Cents,
		}
	}
	return out
}

func fromTasks(tasks []entities.Task) []TaskResponse {
	if len(tasks) == 0 {
		return nil
	}
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = TaskResponse{
			Name:         t.Name,
			Professional: t.Professional,
			Duration:     t.Duration,
			Breakdowns:   fromLineItems(t.Breakdowns),
		}
	}
	return out
}
