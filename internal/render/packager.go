package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"

	"mwonto_studio/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

var ErrPackaging = errors.New("pdf assembly failed")

// A4 portrait in millimetres.
const (
	a4WidthMM  = 210.0
	a4HeightMM = 297.0
)

// Packager places one bitmap snapshot onto a single fixed A4 page. Content
// taller than the page aspect is squeezed, not cropped; a warning is logged
// so distorted exports are traceable.
type Packager struct{}

var _ interfaces.IPackager = (*Packager)(nil)

func NewPackager() *Packager { return &Packager{} }

func (p *Packager) Package(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrPackaging)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrPackaging)
	}

	srcAspect := float64(bounds.Dy()) / float64(bounds.Dx())
	if srcAspect > a4HeightMM/a4WidthMM {
		log.Printf("[render][packager] warning: snapshot aspect %.2f exceeds A4 %.2f; content will be vertically compressed",
			srcAspect, a4HeightMM/a4WidthMM)
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return nil, fmt.Errorf("%w: encoding snapshot: %v", ErrPackaging, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("snapshot", opt, &encoded)
	pdf.ImageOptions("snapshot", 0, 0, a4WidthMM, a4HeightMM, false, opt, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackaging, err)
	}
	return out.Bytes(), nil
}
