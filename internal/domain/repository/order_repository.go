package repository

import "context"

type OrderRepository interface {
	ListIDsByStatus(ctx context.Context, status string) ([]string, error)

	// SumItemQuantities totals quantity over line items belonging to the
	// given orders. Missing quantity counts as zero.
	SumItemQuantities(ctx context.Context, orderIDs []string) (int64, error)
}
