package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"mwonto_studio/internal/usecase/interfaces"
)

// ExportResult is the finished binary document with its download filename.
type ExportResult struct {
	Filename string
	Data     []byte
}

// IExportUseCase renders one stored record to PDF. Rendering always starts
// from the persisted record, so a failed export can be retried by id
// without re-saving anything.

type IExportUseCase interface {
	ExportPDF(ctx context.Context, id string) (ExportResult, error)
}

type ExportUseCase struct {
	repo       interfaces.IDocumentRepository
	rasterizer interfaces.IRasterizer
	packager   interfaces.IPackager
	now        func() time.Time
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(repo interfaces.IDocumentRepository, rasterizer interfaces.IRasterizer, packager interfaces.IPackager) *ExportUseCase {
	return &ExportUseCase{repo: repo, rasterizer: rasterizer, packager: packager, now: time.Now}
}

func (u *ExportUseCase) ExportPDF(ctx context.Context, id string) (ExportResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ExportResult{}, ErrInvalidDocumentID
	}

	doc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return ExportResult{}, err
	}
	if doc.ID == "" {
		return ExportResult{}, ErrDocumentNotFound
	}

	log.Printf("[export][usecase] snapshot start id=%s kind=%s number=%s", doc.ID, doc.Kind, doc.Number)
	img, err := u.rasterizer.Snapshot(ctx, doc)
	if err != nil {
		log.Printf("[export][usecase] snapshot failed id=%s err=%v", doc.ID, err)
		return ExportResult{}, fmt.Errorf("rendering document %s: %w", doc.ID, err)
	}

	data, err := u.packager.Package(img)
	if err != nil {
		log.Printf("[export][usecase] packaging failed id=%s err=%v", doc.ID, err)
		return ExportResult{}, fmt.Errorf("packaging document %s: %w", doc.ID, err)
	}

	name := doc.Number
	if name == "" {
		name = fmt.Sprintf("%d", u.now().UTC().Unix())
	}
	res := ExportResult{
		Filename: fmt.Sprintf("%s-%s.pdf", doc.Kind, name),
		Data:     data,
	}
	log.Printf("[export][usecase] export success id=%s file=%s bytes=%d", doc.ID, res.Filename, len(res.Data))
	return res, nil
}
