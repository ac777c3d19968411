package request

import (
	"testing"

	"mwonto_studio/internal/domain/entities"
)

func TestDocumentCreateRequest_ToEntity(t *testing.T) {
	req := DocumentCreateRequest{
		Kind:         "invoice",
		ClientName:   "Harare City Council",
		ProjectTitle: "Warehouse extension",
		Date:         "2026-03-14",
		Items: []LineItemRequest{
			{Description: "Survey", Amount: "120", Quantity: "1", Cents: "75"},
		},
		Notes:  []string{"Payment due in 30 days"},
		Status: "Pending",
	}

	doc := req.ToEntity()
	if doc.Kind != entities.KindInvoice || doc.Status != entities.StatusPending {
		t.Fatalf("unexpected kind/status: %+v", doc)
	}
	if doc.ClientName != "Harare City Council" || doc.Date != "2026-03-14" {
		t.Fatalf("unexpected header fields: %+v", doc)
	}
	if len(doc.Items) != 1 || doc.Items[0].Amount != "120" || doc.Items[0].Cents != "75" {
		t.Fatalf("unexpected items: %+v", doc.Items)
	}
	if len(doc.Notes) != 1 {
		t.Fatalf("unexpected notes: %+v", doc.Notes)
	}
}

func TestDocumentCreateRequest_ToEntityQuotation(t *testing.T) {
	req := DocumentCreateRequest{
		Kind: "quotation",
		Tasks: []TaskRequest{
			{
				Name:         "Concept design",
				Professional: "Architect",
				Duration:     "2 weeks",
				Breakdowns: []LineItemRequest{
					{Description: "Sketches", Amount: "300"},
					{Description: "3D model", Amount: "450"},
				},
			},
		},
	}

	doc := req.ToEntity()
	if len(doc.Tasks) != 1 {
		t.Fatalf("expected one task, got %+v", doc.Tasks)
	}
	task := doc.Tasks[0]
	if task.Name != "Concept design" || task.Professional != "Architect" {
		t.Fatalf("unexpected task header: %+v", task)
	}
	if len(task.Breakdowns) != 2 || task.Breakdowns[1].Amount != "450" {
		t.Fatalf("unexpected breakdowns: %+v", task.Breakdowns)
	}
	if doc.Items != nil {
		t.Fatalf("quotation request must not map line items: %+v", doc.Items)
	}
}
