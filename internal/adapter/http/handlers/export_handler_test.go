package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mwonto_studio/internal/adapter/http/handlers/mocks"
	"mwonto_studio/internal/render"
	"mwonto_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExportHandler_DownloadPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success streams attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mocks.NewMockIExportUseCase(ctrl)
		sender := mocks.NewMockISendUseCase(ctrl)
		h := NewExportHandler(exporter, sender)

		r := gin.New()
		r.GET("/v1/documents/:id/pdf", h.DownloadPDF)

		exporter.EXPECT().ExportPDF(gomock.Any(), "doc-1").
			Return(usecase.ExportResult{Filename: "invoice-INV-001.pdf", Data: []byte("%PDF-1.4 fake")}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="invoice-INV-001.pdf"` {
			t.Fatalf("unexpected content disposition %q", cd)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf payload, got %q", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mocks.NewMockIExportUseCase(ctrl)
		sender := mocks.NewMockISendUseCase(ctrl)
		h := NewExportHandler(exporter, sender)

		r := gin.New()
		r.GET("/v1/documents/:id/pdf", h.DownloadPDF)

		exporter.EXPECT().ExportPDF(gomock.Any(), "missing").Return(usecase.ExportResult{}, usecase.ErrDocumentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents/missing/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("render timeout maps to 504", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mocks.NewMockIExportUseCase(ctrl)
		sender := mocks.NewMockISendUseCase(ctrl)
		h := NewExportHandler(exporter, sender)

		r := gin.New()
		r.GET("/v1/documents/:id/pdf", h.DownloadPDF)

		wrapped := errors.Join(errors.New("rendering document doc-1"), render.ErrRenderTimeout)
		exporter.EXPECT().ExportPDF(gomock.Any(), "doc-1").Return(usecase.ExportResult{}, wrapped)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})
}

func TestExportHandler_SendDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing recipient rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mocks.NewMockIExportUseCase(ctrl)
		sender := mocks.NewMockISendUseCase(ctrl)
		h := NewExportHandler(exporter, sender)

		r := gin.New()
		r.POST("/v1/documents/:id/send", h.SendDocument)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/send", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mocks.NewMockIExportUseCase(ctrl)
		sender := mocks.NewMockISendUseCase(ctrl)
		h := NewExportHandler(exporter, sender)

		r := gin.New()
		r.POST("/v1/documents/:id/send", h.SendDocument)

		sender.EXPECT().SendDocument(gomock.Any(), "doc-1", "client@example.com").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/send", bytes.NewBufferString(`{"recipient_email":"client@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid recipient maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mocks.NewMockIExportUseCase(ctrl)
		sender := mocks.NewMockISendUseCase(ctrl)
		h := NewExportHandler(exporter, sender)

		r := gin.New()
		r.POST("/v1/documents/:id/send", h.SendDocument)

		sender.EXPECT().SendDocument(gomock.Any(), "doc-1", "not-an-email").Return(usecase.ErrInvalidRecipient)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/send", bytes.NewBufferString(`{"recipient_email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapExportError(t *testing.T) {
	if got := mapExportError(usecase.ErrInvalidDocumentID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapExportError(usecase.ErrDocumentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapExportError(render.ErrNothingToRender); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapExportError(render.ErrRenderTimeout); got.HTTPStatus != http.StatusGatewayTimeout {
		t.Fatalf("expected 504")
	}
	if got := mapExportError(render.ErrAssetLoad); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapExportError(render.ErrPackaging); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
	if got := mapExportError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
