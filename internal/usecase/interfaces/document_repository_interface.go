package interfaces

import (
	"context"

	"mwonto_studio/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for billing documents.
//
// List returns every stored record newest-first by created_at; filtering by
// kind/status/date happens in the use case over the fetched list.
type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	List(ctx context.Context) ([]entities.Document, error)
	Delete(ctx context.Context, id string) error
}
