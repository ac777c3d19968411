// Package render turns persisted document state into a printable PDF.
//
// The pipeline mirrors the export flow of the back-office: the rasterizer
// lays the document out on an off-screen canvas and captures a supersampled
// bitmap, and the packager places that bitmap onto a fixed A4 portrait page.
// Both stages read exclusively from the document entity; the rendered view
// is a projection of state, never a source of it.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"time"

	"mwonto_studio/internal/domain/entities"
	"mwonto_studio/internal/usecase/interfaces"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	ErrNothingToRender = errors.New("document has nothing to render")
	ErrRenderTimeout   = errors.New("asset load timed out")
	ErrAssetLoad       = errors.New("asset load failed")
)

// Logical page geometry in CSS-pixel units (A4 portrait at 96dpi). The
// capture is supersampled so text stays legible after page scaling.
const (
	pageWidth  = 794.0
	margin     = 48.0
	lineHeight = 22.0
)

const defaultAssetTimeout = 5 * time.Second

type Rasterizer struct {
	client       *http.Client
	assetTimeout time.Duration
	scale        float64

	regular font.Face
	bold    font.Face
	title   font.Face
}

var _ interfaces.IRasterizer = (*Rasterizer)(nil)

// NewRasterizer builds a rasterizer capturing at the given supersampling
// factor (min 2). assetTimeout bounds signature-image loading; 0 means the
// 5s default.
func NewRasterizer(client *http.Client, assetTimeout time.Duration, scale float64) (*Rasterizer, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if assetTimeout <= 0 {
		assetTimeout = defaultAssetTimeout
	}
	if scale < 2 {
		scale = 2
	}

	r := &Rasterizer{client: client, assetTimeout: assetTimeout, scale: scale}

	var err error
	if r.regular, err = faceFromTTF(goregular.TTF, 13*scale); err != nil {
		return nil, err
	}
	if r.bold, err = faceFromTTF(gobold.TTF, 13*scale); err != nil {
		return nil, err
	}
	if r.title, err = faceFromTTF(gobold.TTF, 22*scale); err != nil {
		return nil, err
	}
	return r, nil
}

func faceFromTTF(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// Snapshot lays out the document and captures it as an RGBA bitmap. Every
// field is drawn verbatim, empty values included, so the capture always
// shows data rather than blank widgets. A document with no identity and no
// rows cannot be located for rendering and fails explicitly.
func (r *Rasterizer) Snapshot(ctx context.Context, d entities.Document) (image.Image, error) {
	if !d.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrNothingToRender, d.Kind)
	}
	if d.ID == "" && len(d.Items) == 0 && len(d.Tasks) == 0 {
		return nil, ErrNothingToRender
	}

	// The signature asset is fetched up front so layout never captures a
	// half-loaded placeholder.
	var signature image.Image
	if d.SignatureURL != "" {
		img, err := r.loadAsset(ctx, d.SignatureURL)
		if err != nil {
			return nil, err
		}
		signature = img
	}

	height := r.layoutHeight(d, signature)
	dc := gg.NewContext(int(pageWidth*r.scale), int(height*r.scale))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	y := margin + lineHeight
	y = r.drawHeader(dc, d, y)

	switch d.Kind {
	case entities.KindQuotation:
		y = r.drawTasks(dc, d, y)
	default:
		y = r.drawItems(dc, d, y)
	}

	y = r.drawTotal(dc, d, y)

	if len(d.Notes) > 0 {
		y = r.drawNotes(dc, d, y)
	}
	r.drawSignatureBlock(dc, d, signature, y)

	return dc.Image(), nil
}

// loadAsset fetches a remote image with a hard deadline. An unbounded wait
// here would hang the whole export.
func (r *Rasterizer) loadAsset(ctx context.Context, url string) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, r.assetTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetLoad, err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s", ErrRenderTimeout, url)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrAssetLoad, url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s", ErrRenderTimeout, url)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetLoad, err)
	}
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrAssetLoad, url, err)
	}
	return img, nil
}

// layoutHeight pre-measures the content so the canvas fits it exactly.
func (r *Rasterizer) layoutHeight(d entities.Document, signature image.Image) float64 {
	lines := 1.0 // title
	lines += 4   // number, date, client, project
	lines += 1   // spacer

	if d.Kind == entities.KindQuotation {
		for _, t := range d.Tasks {
			lines += 2 // task name + professional/duration
			lines += float64(len(t.Breakdowns))
			lines += 0.5
		}
	} else {
		lines += 1 // table header
		lines += float64(len(d.Items))
	}

	lines += 2 // total row and spacing
	if len(d.Notes) > 0 {
		lines += 1 + float64(len(d.Notes))
	}
	lines += 4 // signature block

	h := margin*2 + lines*lineHeight
	if signature != nil {
		h += 80
	}
	return h
}

func (r *Rasterizer) text(dc *gg.Context, face font.Face, s string, x, y float64) {
	dc.SetFontFace(face)
	dc.DrawString(s, x*r.scale, y*r.scale)
}

func (r *Rasterizer) rule(dc *gg.Context, y float64) {
	dc.SetLineWidth(r.scale)
	dc.DrawLine(margin*r.scale, y*r.scale, (pageWidth-margin)*r.scale, y*r.scale)
	dc.Stroke()
}

func (r *Rasterizer) drawHeader(dc *gg.Context, d entities.Document, y float64) float64 {
	r.text(dc, r.title, "Mwonto Consultants", margin, y)
	y += lineHeight * 1.5

	kindTitle := map[entities.DocumentKind]string{
		entities.KindQuotation: "QUOTATION",
		entities.KindInvoice:   "INVOICE",
		entities.KindReceipt:   "RECEIPT",
	}[d.Kind]
	r.text(dc, r.bold, fmt.Sprintf("%s  %s", kindTitle, d.Number), margin, y)
	y += lineHeight

	r.text(dc, r.regular, "Date: "+d.Date, margin, y)
	y += lineHeight
	r.text(dc, r.regular, "Client: "+d.ClientName, margin, y)
	y += lineHeight
	r.text(dc, r.regular, "Project: "+d.ProjectTitle, margin, y)
	y += lineHeight

	r.rule(dc, y)
	return y + lineHeight
}

func (r *Rasterizer) drawItems(dc *gg.Context, d entities.Document, y float64) float64 {
	const (
		colQty    = margin
		colDesc   = margin + 70
		colAmount = pageWidth - margin - 170
		colCents  = pageWidth - margin - 60
	)

	r.text(dc, r.bold, "Qty", colQty, y)
	r.text(dc, r.bold, "Description", colDesc, y)
	r.text(dc, r.bold, "Amount", colAmount, y)
	r.text(dc, r.bold, "Cents", colCents, y)
	y += lineHeight

	for _, it := range d.Items {
		r.text(dc, r.regular, it.Quantity, colQty, y)
		r.text(dc, r.regular, it.Description, colDesc, y)
		r.text(dc, r.regular, it.Amount, colAmount, y)
		r.text(dc, r.regular, it.Cents, colCents, y)
		y += lineHeight
	}
	return y
}

func (r *Rasterizer) drawTasks(dc *gg.Context, d entities.Document, y float64) float64 {
	colAmount := pageWidth - margin - 120

	for i, t := range d.Tasks {
		r.text(dc, r.bold, fmt.Sprintf("%d. %s", i+1, t.Name), margin, y)
		y += lineHeight
		r.text(dc, r.regular, fmt.Sprintf("Professional: %s    Duration: %s", t.Professional, t.Duration), margin+16, y)
		y += lineHeight

		for _, b := range t.Breakdowns {
			r.text(dc, r.regular, b.Description, margin+32, y)
			r.text(dc, r.regular, b.Amount, colAmount, y)
			y += lineHeight
		}
		y += lineHeight * 0.5
	}
	return y
}

func (r *Rasterizer) drawTotal(dc *gg.Context, d entities.Document, y float64) float64 {
	r.rule(dc, y)
	y += lineHeight
	r.text(dc, r.bold, "Total: "+d.TotalAmount.String(), pageWidth-margin-200, y)
	return y + lineHeight
}

func (r *Rasterizer) drawNotes(dc *gg.Context, d entities.Document, y float64) float64 {
	r.text(dc, r.bold, "Notes", margin, y)
	y += lineHeight
	for _, n := range d.Notes {
		r.text(dc, r.regular, "- "+n, margin+16, y)
		y += lineHeight
	}
	return y
}

func (r *Rasterizer) drawSignatureBlock(dc *gg.Context, d entities.Document, signature image.Image, y float64) {
	if d.MSValue != "" {
		r.text(dc, r.regular, "M/S: "+d.MSValue, margin, y)
		y += lineHeight
	}
	if d.ReceivedBy != "" || d.ReceiverName != "" {
		r.text(dc, r.regular, fmt.Sprintf("Received by: %s %s", d.ReceivedBy, d.ReceiverName), margin, y)
		y += lineHeight
	}
	if d.SignatureDate != "" {
		r.text(dc, r.regular, "Signature date: "+d.SignatureDate, margin, y)
		y += lineHeight
	}
	if signature != nil {
		// The asset keeps its native pixel size; supersampling already
		// happened at capture resolution.
		dc.DrawImage(signature, int(margin*r.scale), int(y*r.scale))
		log.Printf("[render] signature asset placed w=%d h=%d", signature.Bounds().Dx(), signature.Bounds().Dy())
	}
}
