package repository

import (
	"context"

	"artisanmarket/internal/domain/entity"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// UpdateImage patches only the image reference of a single product.
	UpdateImage(ctx context.Context, id, imageURL string) error

	// ListActiveSellerIDs returns the distinct seller ids that have at least
	// one active listing.
	ListActiveSellerIDs(ctx context.Context) ([]string, error)
}
