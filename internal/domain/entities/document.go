package entities

import (
	"time"

	"mwonto_studio/internal/domain/money"
)

// DocumentKind tags the three billing document variants the studio issues.
//
// Each kind carries its own item schema:
//   - quotation: ordered Tasks, each with fee-breakdown rows and free notes
//   - invoice/receipt: flat line items with quantity and sub-unit cents

type DocumentKind string

const (
	KindQuotation DocumentKind = "quotation"
	KindInvoice   DocumentKind = "invoice"
	KindReceipt   DocumentKind = "receipt"
)

type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "Draft"
	StatusSent      DocumentStatus = "Sent"
	StatusPending   DocumentStatus = "Pending"
	StatusPaid      DocumentStatus = "Paid"
	StatusCompleted DocumentStatus = "Completed"
)

// statusesByKind lists the statuses each document kind may hold.
var statusesByKind = map[DocumentKind][]DocumentStatus{
	KindQuotation: {StatusDraft, StatusSent},
	KindInvoice:   {StatusPending, StatusPaid},
	KindReceipt:   {StatusPending, StatusCompleted},
}

func (k DocumentKind) Valid() bool {
	_, ok := statusesByKind[k]
	return ok
}

func (k DocumentKind) AllowsStatus(s DocumentStatus) bool {
	for _, allowed := range statusesByKind[k] {
		if allowed == s {
			return true
		}
	}
	return false
}

// DefaultStatus is the status a freshly saved document gets when the caller
// does not set one.
func (k DocumentKind) DefaultStatus() DocumentStatus {
	if k == KindQuotation {
		return StatusDraft
	}
	return StatusPending
}

// NumberPrefix drives the sequential human-readable number, e.g. "INV-003".
func (k DocumentKind) NumberPrefix() string {
	switch k {
	case KindQuotation:
		return "QTN"
	case KindInvoice:
		return "INV"
	case KindReceipt:
		return "RCT"
	}
	return "DOC"
}

// LineItem is one billable row. All editable fields are strings as typed by
// the user; parsing is lenient and malformed numerics count as zero.
// Quantity and Cents apply to invoice/receipt rows only; quotation breakdown
// rows use Description and Amount.
type LineItem struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Quantity    string `json:"quantity,omitempty"`
	Cents       string `json:"cents,omitempty"`
}

// Task is a named unit of work in a quotation, with its fee-breakdown rows.
type Task struct {
	Name         string     `json:"name"`
	Professional string     `json:"professional"`
	Duration     string     `json:"duration"`
	Breakdowns   []LineItem `json:"breakdowns"`
}

// Total sums the task's breakdown amounts.
func (t Task) Total() money.Amount {
	var sum money.Amount
	for _, b := range t.Breakdowns {
		sum += money.ParseMajor(b.Amount)
	}
	return sum
}

// Document is the persisted billing record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - owner and kind are plain attributes; listing scans the table and
//     filters in memory (record counts are small, see DESIGN.md)
type Document struct {
	ID           string         `json:"id"`
	Kind         DocumentKind   `json:"kind"`
	Number       string         `json:"number"`
	ClientName   string         `json:"client_name"`
	ProjectTitle string         `json:"project_title"`
	Date         string         `json:"date"`

	Items []LineItem `json:"items,omitempty"`
	Tasks []Task     `json:"tasks,omitempty"`
	Notes []string   `json:"notes,omitempty"`

	// Receipt/invoice signature block.
	MSValue       string `json:"ms_value,omitempty"`
	ReceivedBy    string `json:"received_by,omitempty"`
	ReceiverName  string `json:"receiver_name,omitempty"`
	SignatureDate string `json:"signature_date,omitempty"`
	SignatureURL  string `json:"signature_url,omitempty"`

	TotalAmount money.Amount   `json:"total_amount"`
	Status      DocumentStatus `json:"status"`
	OwnerID     string         `json:"owner_id"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Total derives the document total from its item rows.
//
// Policy: invoice/receipt quantity is informational and never multiplies the
// amount; the total is the sum of row amounts plus sub-unit cents, with
// cents >= 100 carried into the major amount. Quotations sum every task
// breakdown. The result is deterministic and safe on arbitrary input.
func (d Document) Total() money.Amount {
	if d.Kind == KindQuotation {
		var sum money.Amount
		for _, t := range d.Tasks {
			sum += t.Total()
		}
		return sum
	}

	var sum money.Amount
	var cents int64
	for _, it := range d.Items {
		sum += money.ParseMajor(it.Amount)
		cents += money.ParseCents(it.Cents)
	}
	// Sub-unit cents are summed independently; the minor-unit representation
	// carries cents >= 100 into the major amount by construction.
	return sum + money.Amount(cents)
}

// Recalculate refreshes the derived total in place.
func (d *Document) Recalculate() {
	d.TotalAmount = d.Total()
}
