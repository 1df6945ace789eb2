package repository

import (
	"context"

	"artisanmarket/internal/domain/entity"
)

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}
