package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/pkg/errors"
)

type firestoreCustomerRepository struct {
	client *firestore.Client
}

func NewFirestoreCustomerRepository(client *firestore.Client) repository.CustomerRepository {
	return &firestoreCustomerRepository{
		client: client,
	}
}

func (r *firestoreCustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer

	err := readWithRetry(ctx, "customer_profiles.get", func(ctx context.Context) error {
		doc, err := r.client.Collection("customer_profiles").Doc(id).Get(ctx)
		if err != nil {
			return classify("Customer", err)
		}

		if err := doc.DataTo(&customer); err != nil {
			return errors.Internal("Failed to parse customer data", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *firestoreCustomerRepository) Count(ctx context.Context) (int64, error) {
	var total int64

	err := readWithRetry(ctx, "customer_profiles.count", func(ctx context.Context) error {
		total = 0

		iter := r.client.Collection("customer_profiles").Select().Documents(ctx)
		defer iter.Stop()

		for {
			_, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return classify("Customer records", err)
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
