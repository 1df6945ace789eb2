package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) ListIDsByStatus(ctx context.Context, orderStatus string) ([]string, error) {
	var ids []string

	err := readWithRetry(ctx, "orders.list_ids", func(ctx context.Context) error {
		ids = ids[:0]

		iter := r.client.Collection("orders").
			Where("status", "==", orderStatus).
			Select().
			Documents(ctx)
		defer iter.Stop()

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return classify("Order records", err)
			}
			ids = append(ids, doc.Ref.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *firestoreOrderRepository) SumItemQuantities(ctx context.Context, orderIDs []string) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}

	// Membership is checked client-side; an "in" filter caps out at 30
	// arguments and delivered-order sets routinely exceed that.
	wanted := make(map[string]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = struct{}{}
	}

	var sum int64

	err := readWithRetry(ctx, "order_items.sum", func(ctx context.Context) error {
		sum = 0

		iter := r.client.Collection("order_items").Documents(ctx)
		defer iter.Stop()

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return classify("Order items", err)
			}

			var item entity.OrderItem
			if err := doc.DataTo(&item); err != nil {
				return errors.Internal("Failed to parse order item data", err)
			}

			if _, ok := wanted[item.OrderID]; ok {
				// Absent quantity decodes to zero, which is exactly the
				// contribution it should make.
				sum += item.Quantity
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return sum, nil
}
