package interfaces

import (
	"context"

	"play12/internal/domain/entities"
)

// IProductRepository abstracts read-only catalog lookups.
//
// The payment flow resolves a product when the request references one;
// it never writes to the catalog.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
