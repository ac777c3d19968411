package editor

import (
	"errors"
	"testing"

	"mwonto_studio/internal/domain/entities"
)

func TestEditor_InvoiceRows(t *testing.T) {
	t.Run("add and update recompute total", func(t *testing.T) {
		e := New(entities.KindInvoice)
		if err := e.AddItem(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.AddItem(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.UpdateItemField(0, "amount", "100"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.UpdateItemField(0, "cents", "50"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.UpdateItemField(1, "amount", "20"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.UpdateItemField(1, "cents", "75"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := e.Total(); got != "121.25" {
			t.Fatalf("expected 121.25, got %s", got)
		}
	})

	t.Run("out of range fails loudly", func(t *testing.T) {
		e := New(entities.KindInvoice)
		if err := e.UpdateItemField(0, "amount", "1"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
		if err := e.RemoveItem(3); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		e := New(entities.KindInvoice)
		_ = e.AddItem()
		if err := e.UpdateItemField(0, "discount", "5"); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("remove updates total", func(t *testing.T) {
		e := New(entities.KindInvoice)
		_ = e.AddItem()
		_ = e.AddItem()
		_ = e.UpdateItemField(0, "amount", "10")
		_ = e.UpdateItemField(1, "amount", "20")
		if err := e.RemoveItem(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := e.Total(); got != "20.00" {
			t.Fatalf("expected 20.00 after removal, got %s", got)
		}
		if len(e.Document().Items) != 1 {
			t.Fatalf("expected 1 item left")
		}
	})

	t.Run("task operations rejected on invoices", func(t *testing.T) {
		e := New(entities.KindInvoice)
		if err := e.AddTask(); !errors.Is(err, ErrKindMismatch) {
			t.Fatalf("expected ErrKindMismatch, got %v", err)
		}
		if err := e.AddNote(); !errors.Is(err, ErrKindMismatch) {
			t.Fatalf("expected ErrKindMismatch, got %v", err)
		}
	})
}

func TestEditor_QuotationTasks(t *testing.T) {
	t.Run("breakdown edits recompute total", func(t *testing.T) {
		e := New(entities.KindQuotation)
		if err := e.AddTask(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.UpdateTaskField(0, "name", "Concept design"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.UpdateBreakdownField(0, 0, "amount", "1500"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.AddBreakdown(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.UpdateBreakdownField(0, 1, "amount", "250.75"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := e.Total(); got != "1750.75" {
			t.Fatalf("expected 1750.75, got %s", got)
		}
	})

	t.Run("line item ops rejected on quotations", func(t *testing.T) {
		e := New(entities.KindQuotation)
		if err := e.AddItem(); !errors.Is(err, ErrKindMismatch) {
			t.Fatalf("expected ErrKindMismatch, got %v", err)
		}
	})

	t.Run("breakdown index checked per task", func(t *testing.T) {
		e := New(entities.KindQuotation)
		_ = e.AddTask()
		if err := e.UpdateBreakdownField(1, 0, "amount", "1"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected task index error, got %v", err)
		}
		if err := e.UpdateBreakdownField(0, 5, "amount", "1"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected breakdown index error, got %v", err)
		}
		if err := e.RemoveBreakdown(0, 2); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected breakdown index error, got %v", err)
		}
	})

	t.Run("notes add update remove", func(t *testing.T) {
		e := New(entities.KindQuotation)
		if err := e.AddNote(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := e.UpdateNote(0, "Validity: 30 days"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := e.Document().Notes[0]; got != "Validity: 30 days" {
			t.Fatalf("unexpected note: %q", got)
		}
		if err := e.RemoveNote(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(e.Document().Notes) != 0 {
			t.Fatalf("expected empty notes")
		}
		if err := e.UpdateNote(0, "x"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestEditor_Load(t *testing.T) {
	doc := entities.Document{
		Kind:  entities.KindReceipt,
		Items: []entities.LineItem{{Amount: "40", Cents: "120"}},
	}
	e := Load(doc)
	if got := e.Total(); got != "41.20" {
		t.Fatalf("expected 41.20, got %s", got)
	}
}
