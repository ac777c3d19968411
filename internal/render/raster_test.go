package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mwonto_studio/internal/domain/entities"
)

func sampleInvoice() entities.Document {
	d := entities.Document{
		ID:           "doc-1",
		Kind:         entities.KindInvoice,
		Number:       "INV-003",
		ClientName:   "Acme Estates",
		ProjectTitle: "Lakeside Residence",
		Date:         "2026-08-20",
		Items: []entities.LineItem{
			{Quantity: "1", Description: "Site survey", Amount: "100", Cents: "50"},
			{Quantity: "2", Description: "Schematics", Amount: "20", Cents: "75"},
		},
	}
	d.Recalculate()
	return d
}

func newTestRasterizer(t *testing.T, timeout time.Duration) *Rasterizer {
	t.Helper()
	r, err := NewRasterizer(nil, timeout, 2)
	if err != nil {
		t.Fatalf("building rasterizer: %v", err)
	}
	return r
}

func TestRasterizer_Snapshot(t *testing.T) {
	t.Run("invoice snapshot is supersampled", func(t *testing.T) {
		r := newTestRasterizer(t, 0)
		img, err := r.Snapshot(context.Background(), sampleInvoice())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := img.Bounds().Dx(); got != int(pageWidth*2) {
			t.Fatalf("expected width %d, got %d", int(pageWidth*2), got)
		}
		if img.Bounds().Dy() <= 0 {
			t.Fatalf("expected positive height")
		}
	})

	t.Run("quotation with tasks and notes", func(t *testing.T) {
		r := newTestRasterizer(t, 0)
		d := entities.Document{
			ID:     "doc-2",
			Kind:   entities.KindQuotation,
			Number: "QTN-001",
			Tasks: []entities.Task{
				{Name: "Concept design", Professional: "Architect", Duration: "2 weeks",
					Breakdowns: []entities.LineItem{{Description: "Sketches", Amount: "1500"}}},
			},
			Notes: []string{"Validity: 30 days", "50% deposit on acceptance"},
		}
		d.Recalculate()
		if _, err := r.Snapshot(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown kind fails explicitly", func(t *testing.T) {
		r := newTestRasterizer(t, 0)
		_, err := r.Snapshot(context.Background(), entities.Document{Kind: "memo"})
		if !errors.Is(err, ErrNothingToRender) {
			t.Fatalf("expected ErrNothingToRender, got %v", err)
		}
	})

	t.Run("empty document fails explicitly", func(t *testing.T) {
		r := newTestRasterizer(t, 0)
		_, err := r.Snapshot(context.Background(), entities.Document{Kind: entities.KindInvoice})
		if !errors.Is(err, ErrNothingToRender) {
			t.Fatalf("expected ErrNothingToRender, got %v", err)
		}
	})
}

func TestRasterizer_SignatureAsset(t *testing.T) {
	signaturePNG := func(t *testing.T) []byte {
		t.Helper()
		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 20))); err != nil {
			t.Fatalf("encoding fixture: %v", err)
		}
		return buf.Bytes()
	}

	t.Run("asset is fetched and embedded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(signaturePNG(t))
		}))
		defer srv.Close()

		r := newTestRasterizer(t, 0)
		d := sampleInvoice()
		d.SignatureURL = srv.URL + "/signature.png"
		if _, err := r.Snapshot(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("slow asset times out with RenderTimeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer srv.Close()

		r := newTestRasterizer(t, 50*time.Millisecond)
		d := sampleInvoice()
		d.SignatureURL = srv.URL + "/signature.png"
		_, err := r.Snapshot(context.Background(), d)
		if !errors.Is(err, ErrRenderTimeout) {
			t.Fatalf("expected ErrRenderTimeout, got %v", err)
		}
	})

	t.Run("missing asset fails instead of blank output", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		r := newTestRasterizer(t, 0)
		d := sampleInvoice()
		d.SignatureURL = srv.URL + "/gone.png"
		_, err := r.Snapshot(context.Background(), d)
		if !errors.Is(err, ErrAssetLoad) {
			t.Fatalf("expected ErrAssetLoad, got %v", err)
		}
	})
}

func TestPackager_Package(t *testing.T) {
	t.Run("emits a pdf filling the page", func(t *testing.T) {
		p := NewPackager()
		img := image.NewRGBA(image.Rect(0, 0, 794, 1123))
		data, err := p.Package(img)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Fatalf("expected PDF magic, got %q", data[:8])
		}
	})

	t.Run("nil snapshot rejected", func(t *testing.T) {
		p := NewPackager()
		if _, err := p.Package(nil); !errors.Is(err, ErrPackaging) {
			t.Fatalf("expected ErrPackaging, got %v", err)
		}
	})

	t.Run("empty snapshot rejected", func(t *testing.T) {
		p := NewPackager()
		if _, err := p.Package(image.NewRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrPackaging) {
			t.Fatalf("expected ErrPackaging, got %v", err)
		}
	})

	t.Run("tall snapshot still produces one page", func(t *testing.T) {
		p := NewPackager()
		img := image.NewRGBA(image.Rect(0, 0, 400, 4000))
		data, err := p.Package(img)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) == 0 {
			t.Fatalf("expected output bytes")
		}
	})
}
