package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"mwonto_studio/internal/domain/entities"
	"mwonto_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidDocumentID  = errors.New("invalid document id")
	ErrInvalidKind        = errors.New("invalid document kind")
	ErrInvalidStatus      = errors.New("invalid status for document kind")
	ErrMissingClientName  = errors.New("client name is required")
	ErrMissingDate        = errors.New("date is required")
	ErrUnauthenticated    = errors.New("no active session")
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
	ErrInvalidRangeDays   = errors.New("invalid date range bucket")
)

// ListFilter narrows the fetched record list. Filtering is applied in
// memory over the full list, which is fine for back-office record counts.
type ListFilter struct {
	Kind      string
	Status    string
	Date      string // exact match on the document date (YYYY-MM-DD)
	RangeDays int    // 0 (off) or one of 7, 30, 90
}

// IDocumentUseCase exposes the persistence-gateway operations for billing
// documents: save, list with filters, fetch and confirmed delete.

type IDocumentUseCase interface {
	Save(ctx context.Context, token string, doc entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	List(ctx context.Context, f ListFilter) ([]entities.Document, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type DocumentUseCase struct {
	repo     interfaces.IDocumentRepository
	identity interfaces.IIdentityProvider
	now      func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDocumentRepository, identity interfaces.IIdentityProvider) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, identity: identity, now: time.Now}
}

// Save validates the document, resolves the owning user from the session
// token and persists one immutable record. The session is verified before
// any write is attempted.
func (u *DocumentUseCase) Save(ctx context.Context, token string, doc entities.Document) (entities.Document, error) {
	session, err := u.identity.VerifySession(ctx, strings.TrimSpace(token))
	if err != nil {
		log.Printf("[document][usecase] save rejected: session invalid err=%v", err)
		return entities.Document{}, ErrUnauthenticated
	}

	if !doc.Kind.Valid() {
		return entities.Document{}, ErrInvalidKind
	}
	doc.ClientName = strings.TrimSpace(doc.ClientName)
	if doc.ClientName == "" {
		return entities.Document{}, ErrMissingClientName
	}
	if strings.TrimSpace(doc.Date) == "" {
		return entities.Document{}, ErrMissingDate
	}
	if doc.Status == "" {
		doc.Status = doc.Kind.DefaultStatus()
	}
	if !doc.Kind.AllowsStatus(doc.Status) {
		return entities.Document{}, ErrInvalidStatus
	}

	// The stored total is always derived from the item rows, never trusted
	// from the caller.
	doc.Recalculate()

	if strings.TrimSpace(doc.Number) == "" {
		number, err := u.nextNumber(ctx, doc.Kind)
		if err != nil {
			return entities.Document{}, err
		}
		doc.Number = number
	}

	doc.ID = uuid.NewString()
	doc.OwnerID = session.UserID
	doc.CreatedAt = u.now().UTC()

	created, err := u.repo.Create(ctx, doc)
	if err != nil {
		log.Printf("[document][usecase] create failed kind=%s number=%s err=%v", doc.Kind, doc.Number, err)
		return entities.Document{}, err
	}
	log.Printf("[document][usecase] saved kind=%s number=%s id=%s total=%s", created.Kind, created.Number, created.ID, created.TotalAmount.String())
	return created, nil
}

// nextNumber allocates the next sequential human-readable number for a
// kind, e.g. "INV-003", from the newest stored record of that kind.
func (u *DocumentUseCase) nextNumber(ctx context.Context, kind entities.DocumentKind) (string, error) {
	docs, err := u.repo.List(ctx)
	if err != nil {
		return "", err
	}
	prefix := kind.NumberPrefix()
	seq := 0
	for _, d := range docs {
		if d.Kind != kind {
			continue
		}
		rest, ok := strings.CutPrefix(d.Number, prefix+"-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > seq {
			seq = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, seq+1), nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}

// List returns stored records newest-first, optionally narrowed by kind,
// status, exact date or a last-N-days bucket.
func (u *DocumentUseCase) List(ctx context.Context, f ListFilter) ([]entities.Document, error) {
	switch f.RangeDays {
	case 0, 7, 30, 90:
	default:
		return nil, ErrInvalidRangeDays
	}
	if f.Kind != "" && !entities.DocumentKind(f.Kind).Valid() {
		return nil, ErrInvalidKind
	}

	docs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var cutoff time.Time
	if f.RangeDays > 0 {
		cutoff = u.now().UTC().AddDate(0, 0, -f.RangeDays)
	}

	out := make([]entities.Document, 0, len(docs))
	for _, d := range docs {
		if f.Kind != "" && string(d.Kind) != f.Kind {
			continue
		}
		if f.Status != "" && string(d.Status) != f.Status {
			continue
		}
		if f.Date != "" && d.Date != f.Date {
			continue
		}
		if f.RangeDays > 0 && d.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// Delete removes one record. The confirmation flag is the only safeguard
// against accidental destruction: unconfirmed calls never reach the store.
func (u *DocumentUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDocumentID
	}
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d.ID == "" {
		return ErrDocumentNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[document][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[document][usecase] deleted id=%s number=%s", id, d.Number)
	return nil
}
