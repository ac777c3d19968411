package interfaces

import (
	"context"
	"image"

	"mwonto_studio/internal/domain/entities"
)

// IRasterizer snapshots document state into a supersampled bitmap. It reads
// exclusively from the entity, never from any rendered view.
type IRasterizer interface {
	Snapshot(ctx context.Context, d entities.Document) (image.Image, error)
}

// IPackager places one bitmap onto a fixed A4 portrait page and emits the
// binary PDF.
type IPackager interface {
	Package(img image.Image) ([]byte, error)
}
