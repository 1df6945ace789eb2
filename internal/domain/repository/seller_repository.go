package repository

import (
	"context"

	"artisanmarket/internal/domain/entity"
)

type SellerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Seller, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	ListIDsByStatus(ctx context.Context, status string) ([]string, error)
}
