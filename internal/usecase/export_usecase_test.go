package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"mwonto_studio/internal/domain/entities"
	mock_interfaces "mwonto_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExportUseCase_ExportPDF(t *testing.T) {
	blank := image.NewRGBA(image.Rect(0, 0, 10, 10))

	t.Run("invalid id", func(t *testing.T) {
		uc := NewExportUseCase(nil, nil, nil)
		_, err := uc.ExportPDF(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidDocumentID) {
			t.Fatalf("expected ErrInvalidDocumentID, got %v", err)
		}
	})

	t.Run("record not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewExportUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{}, nil)

		_, err := uc.ExportPDF(context.Background(), "doc-1")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("snapshot failure leaves no artifact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		rasterizer := mock_interfaces.NewMockIRasterizer(ctrl)
		uc := NewExportUseCase(repo, rasterizer, nil)

		snapErr := errors.New("nothing to render")
		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1"}, nil)
		rasterizer.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(nil, snapErr)

		res, err := uc.ExportPDF(context.Background(), "doc-1")
		if !errors.Is(err, snapErr) {
			t.Fatalf("expected wrapped snapshot error, got %v", err)
		}
		if res.Data != nil || res.Filename != "" {
			t.Fatalf("expected empty result, got %+v", res)
		}
	})

	t.Run("packaging failure leaves no artifact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		rasterizer := mock_interfaces.NewMockIRasterizer(ctrl)
		packager := mock_interfaces.NewMockIPackager(ctrl)
		uc := NewExportUseCase(repo, rasterizer, packager)

		pkgErr := errors.New("assembly failed")
		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1"}, nil)
		rasterizer.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(blank, nil)
		packager.EXPECT().Package(blank).Return(nil, pkgErr)

		res, err := uc.ExportPDF(context.Background(), "doc-1")
		if !errors.Is(err, pkgErr) {
			t.Fatalf("expected wrapped packaging error, got %v", err)
		}
		if res.Data != nil {
			t.Fatalf("expected no partial artifact")
		}
	})

	t.Run("filename uses kind and number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		rasterizer := mock_interfaces.NewMockIRasterizer(ctrl)
		packager := mock_interfaces.NewMockIPackager(ctrl)
		uc := NewExportUseCase(repo, rasterizer, packager)

		doc := entities.Document{ID: "doc-1", Kind: entities.KindInvoice, Number: "INV-003"}
		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(doc, nil)
		rasterizer.EXPECT().Snapshot(gomock.Any(), doc).Return(blank, nil)
		packager.EXPECT().Package(blank).Return([]byte("%PDF-1.3 fake"), nil)

		res, err := uc.ExportPDF(context.Background(), "doc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Filename != "invoice-INV-003.pdf" {
			t.Fatalf("unexpected filename: %s", res.Filename)
		}
		if !bytes.HasPrefix(res.Data, []byte("%PDF")) {
			t.Fatalf("unexpected data")
		}
	})

	t.Run("filename falls back to timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		rasterizer := mock_interfaces.NewMockIRasterizer(ctrl)
		packager := mock_interfaces.NewMockIPackager(ctrl)
		uc := NewExportUseCase(repo, rasterizer, packager)
		uc.now = func() time.Time { return time.Unix(1756640000, 0).UTC() }

		doc := entities.Document{ID: "doc-2", Kind: entities.KindQuotation}
		repo.EXPECT().GetByID(gomock.Any(), "doc-2").Return(doc, nil)
		rasterizer.EXPECT().Snapshot(gomock.Any(), doc).Return(blank, nil)
		packager.EXPECT().Package(blank).Return([]byte("pdf"), nil)

		res, err := uc.ExportPDF(context.Background(), "doc-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Filename != "quotation-1756640000.pdf" {
			t.Fatalf("unexpected filename: %s", res.Filename)
		}
	})
}
