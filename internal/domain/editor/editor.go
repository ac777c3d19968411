// Package editor holds the in-memory editable state of one document.
//
// The editor is the single source of truth while a document is being
// composed: every row mutation goes through it and synchronously refreshes
// the derived total, so renderers and persistence only ever read state that
// is already consistent.
package editor

import (
	"errors"
	"fmt"

	"mwonto_studio/internal/domain/entities"
)

var (
	ErrIndexOutOfRange = errors.New("row index out of range")
	ErrUnknownField    = errors.New("unknown field")
	ErrKindMismatch    = errors.New("operation not valid for document kind")
)

// Editor wraps a Document and exposes its row-level mutations. One editor
// per document, single user; no internal locking.
type Editor struct {
	doc entities.Document
}

// New opens an editor over an empty document of the given kind.
func New(kind entities.DocumentKind) *Editor {
	e := &Editor{doc: entities.Document{Kind: kind}}
	if kind == entities.KindQuotation {
		e.doc.Tasks = []entities.Task{}
		e.doc.Notes = []string{}
	} else {
		e.doc.Items = []entities.LineItem{}
	}
	return e
}

// Load opens an editor over an existing document (edit flow).
func Load(doc entities.Document) *Editor {
	doc.Recalculate()
	return &Editor{doc: doc}
}

// Document returns a copy of the current state with the total up to date.
func (e *Editor) Document() entities.Document { return e.doc }

// Total returns the current derived total.
func (e *Editor) Total() string { return e.doc.TotalAmount.String() }

func (e *Editor) SetHeader(clientName, projectTitle, date string) {
	e.doc.ClientName = clientName
	e.doc.ProjectTitle = projectTitle
	e.doc.Date = date
}

// AddItem appends one empty line item. No upper bound.
func (e *Editor) AddItem() error {
	if e.doc.Kind == entities.KindQuotation {
		return ErrKindMismatch
	}
	e.doc.Items = append(e.doc.Items, entities.LineItem{})
	e.doc.Recalculate()
	return nil
}

// UpdateItemField replaces one field of one line item. An invalid index is
// a caller bug and fails loudly instead of silently mutating nothing.
func (e *Editor) UpdateItemField(index int, field, value string) error {
	if index < 0 || index >= len(e.doc.Items) {
		return fmt.Errorf("item %d: %w", index, ErrIndexOutOfRange)
	}
	it := &e.doc.Items[index]
	switch field {
	case "description":
		it.Description = value
	case "amount":
		it.Amount = value
	case "quantity":
		it.Quantity = value
	case "cents":
		it.Cents = value
	default:
		return fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	e.doc.Recalculate()
	return nil
}

// RemoveItem deletes one line item, preserving row order.
func (e *Editor) RemoveItem(index int) error {
	if index < 0 || index >= len(e.doc.Items) {
		return fmt.Errorf("item %d: %w", index, ErrIndexOutOfRange)
	}
	e.doc.Items = append(e.doc.Items[:index], e.doc.Items[index+1:]...)
	e.doc.Recalculate()
	return nil
}

// AddTask appends an empty quotation task with a single empty breakdown row.
func (e *Editor) AddTask() error {
	if e.doc.Kind != entities.KindQuotation {
		return ErrKindMismatch
	}
	e.doc.Tasks = append(e.doc.Tasks, entities.Task{
		Breakdowns: []entities.LineItem{{}},
	})
	e.doc.Recalculate()
	return nil
}

func (e *Editor) UpdateTaskField(index int, field, value string) error {
	if index < 0 || index >= len(e.doc.Tasks) {
		return fmt.Errorf("task %d: %w", index, ErrIndexOutOfRange)
	}
	t := &e.doc.Tasks[index]
	switch field {
	case "name":
		t.Name = value
	case "professional":
		t.Professional = value
	case "duration":
		t.Duration = value
	default:
		return fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	return nil
}

// AddBreakdown appends an empty fee-breakdown row to one task.
func (e *Editor) AddBreakdown(taskIndex int) error {
	if taskIndex < 0 || taskIndex >= len(e.doc.Tasks) {
		return fmt.Errorf("task %d: %w", taskIndex, ErrIndexOutOfRange)
	}
	t := &e.doc.Tasks[taskIndex]
	t.Breakdowns = append(t.Breakdowns, entities.LineItem{})
	e.doc.Recalculate()
	return nil
}

func (e *Editor) UpdateBreakdownField(taskIndex, rowIndex int, field, value string) error {
	if taskIndex < 0 || taskIndex >= len(e.doc.Tasks) {
		return fmt.Errorf("task %d: %w", taskIndex, ErrIndexOutOfRange)
	}
	t := &e.doc.Tasks[taskIndex]
	if rowIndex < 0 || rowIndex >= len(t.Breakdowns) {
		return fmt.Errorf("breakdown %d: %w", rowIndex, ErrIndexOutOfRange)
	}
	b := &t.Breakdowns[rowIndex]
	switch field {
	case "description":
		b.Description = value
	case "amount":
		b.Amount = value
	default:
		return fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	e.doc.Recalculate()
	return nil
}

func (e *Editor) RemoveBreakdown(taskIndex, rowIndex int) error {
	if taskIndex < 0 || taskIndex >= len(e.doc.Tasks) {
		return fmt.Errorf("task %d: %w", taskIndex, ErrIndexOutOfRange)
	}
	t := &e.doc.Tasks[taskIndex]
	if rowIndex < 0 || rowIndex >= len(t.Breakdowns) {
		return fmt.Errorf("breakdown %d: %w", rowIndex, ErrIndexOutOfRange)
	}
	t.Breakdowns = append(t.Breakdowns[:rowIndex], t.Breakdowns[rowIndex+1:]...)
	e.doc.Recalculate()
	return nil
}

// AddNote appends an empty free-text note (quotation only).
func (e *Editor) AddNote() error {
	if e.doc.Kind != entities.KindQuotation {
		return ErrKindMismatch
	}
	e.doc.Notes = append(e.doc.Notes, "")
	return nil
}

func (e *Editor) UpdateNote(index int, text string) error {
	if index < 0 || index >= len(e.doc.Notes) {
		return fmt.Errorf("note %d: %w", index, ErrIndexOutOfRange)
	}
	e.doc.Notes[index] = text
	return nil
}

func (e *Editor) RemoveNote(index int) error {
	if index < 0 || index >= len(e.doc.Notes) {
		return fmt.Errorf("note %d: %w", index, ErrIndexOutOfRange)
	}
	e.doc.Notes = append(e.doc.Notes[:index], e.doc.Notes[index+1:]...)
	return nil
}
