package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/pkg/errors"
)

type firestoreSellerRepository struct {
	client *firestore.Client
}

func NewFirestoreSellerRepository(client *firestore.Client) repository.SellerRepository {
	return &firestoreSellerRepository{
		client: client,
	}
}

func (r *firestoreSellerRepository) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	var seller entity.Seller

	err := readWithRetry(ctx, "seller_profiles.get", func(ctx context.Context) error {
		doc, err := r.client.Collection("seller_profiles").Doc(id).Get(ctx)
		if err != nil {
			return classify("Seller", err)
		}

		if err := doc.DataTo(&seller); err != nil {
			return errors.Internal("Failed to parse seller data", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &seller, nil
}

func (r *firestoreSellerRepository) CountByStatus(ctx context.Context, sellerStatus string) (int64, error) {
	var total int64

	err := readWithRetry(ctx, "seller_profiles.count", func(ctx context.Context) error {
		total = 0

		iter := r.client.Collection("seller_profiles").
			Where("status", "==", sellerStatus).
			Select().
			Documents(ctx)
		defer iter.Stop()

		for {
			_, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return classify("Seller records", err)
			}
			total++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *firestoreSellerRepository) ListIDsByStatus(ctx context.Context, sellerStatus string) ([]string, error) {
	var ids []string

	err := readWithRetry(ctx, "seller_profiles.list_ids", func(ctx context.Context) error {
		ids = ids[:0]

		iter := r.client.Collection("seller_profiles").
			Where("status", "==", sellerStatus).
			Select().
			Documents(ctx)
		defer iter.Stop()

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return classify("Seller records", err)
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
