package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product

	err := readWithRetry(ctx, "products.get", func(ctx context.Context) error {
		doc, err := r.client.Collection("products").Doc(id).Get(ctx)
		if err != nil {
			return classify("Product", err)
		}

		if err := doc.DataTo(&product); err != nil {
			return errors.Internal("Failed to parse product data", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *firestoreProductRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "image_url", Value: imageURL},
		{Path: "updated_at", Value: time.Now()},
	})
	if err != nil {
		return classify("Product", err)
	}

	return nil
}

func (r *firestoreProductRepository) ListActiveSellerIDs(ctx context.Context) ([]string, error) {
	var ids []string

	err := readWithRetry(ctx, "products.list_seller_ids", func(ctx context.Context) error {
		ids = ids[:0]
		seen := make(map[string]struct{})

		iter := r.client.Collection("products").
			Where("status", "==", entity.ProductStatusActive).
			Select("seller_id").
			Documents(ctx)
		defer iter.Stop()

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return classify("Product records", err)
			}

			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				return errors.Internal("Failed to parse product data", err)
			}

			if _, ok := seen[product.SellerID]; !ok && product.SellerID != "" {
				seen[product.SellerID] = struct{}{}
				ids = append(ids, product.SellerID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}
