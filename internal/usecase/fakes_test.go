package usecase

import (
	"context"
	"fmt"
	"sort"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/pkg/errors"
)

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	countErr  error
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, errors.NotFound("Customer", nil)
	}
	return customer, nil
}

func (f *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.customers)), nil
}

type fakeSellerRepo struct {
	sellers  map[string]*entity.Seller
	countErr error
	listErr  error
}

func (f *fakeSellerRepo) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	seller, ok := f.sellers[id]
	if !ok {
		return nil, errors.NotFound("Seller", nil)
	}
	return seller, nil
}

func (f *fakeSellerRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, seller := range f.sellers {
		if seller.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeSellerRepo) ListIDsByStatus(ctx context.Context, status string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var ids []string
	for id, seller := range f.sellers {
		if seller.Status == status {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeProductRepo struct {
	products  map[string]*entity.Product
	updateErr error
	updated   map[string]string
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (f *fakeProductRepo) UpdateImage(ctx context.Context, id, imageURL string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]string)
	}
	f.updated[id] = imageURL
	return nil
}

func (f *fakeProductRepo) ListActiveSellerIDs(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, product := range f.products {
		if product.Status != entity.ProductStatusActive {
			continue
		}
		if _, ok := seen[product.SellerID]; !ok {
			seen[product.SellerID] = struct{}{}
			ids = append(ids, product.SellerID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeOrderRepo struct {
	orders  []*entity.Order
	items   []*entity.OrderItem
	listErr error
	sumErr  error
}

func (f *fakeOrderRepo) ListIDsByStatus(ctx context.Context, status string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var ids []string
	for _, order := range f.orders {
		if order.Status == status {
			ids = append(ids, order.ID)
		}
	}
	return ids, nil
}

func (f *fakeOrderRepo) SumItemQuantities(ctx context.Context, orderIDs []string) (int64, error) {
	if f.sumErr != nil {
		return 0, f.sumErr
	}
	wanted := make(map[string]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = struct{}{}
	}
	var sum int64
	for _, item := range f.items {
		if _, ok := wanted[item.OrderID]; ok {
			sum += item.Quantity
		}
	}
	return sum, nil
}

// fakeConversationRepo mirrors the backend's ordering contract: listing sorts
// by last activity descending (id ascending on ties), threads sort ascending
// by created timestamp with id as tiebreak.
type fakeConversationRepo struct {
	conversations map[string]*entity.Conversation
	messages      []*entity.Message
	nextID        int
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{conversations: make(map[string]*entity.Conversation)}
}

func (f *fakeConversationRepo) Create(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		f.nextID++
		conversation.ID = fmt.Sprintf("conv-%d", f.nextID)
	}
	if conversation.LastMessageAt.IsZero() {
		conversation.LastMessageAt = conversation.CreatedAt
	}
	f.conversations[conversation.ID] = conversation
	return nil
}

func (f *fakeConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	conversation, ok := f.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (f *fakeConversationRepo) ListByParticipant(ctx context.Context, participantID string, role entity.Role, limit, offset int) ([]*entity.Conversation, int64, error) {
	var matched []*entity.Conversation
	for _, conversation := range f.conversations {
		if role == entity.RoleCustomer && conversation.CustomerID == participantID {
			matched = append(matched, conversation)
		}
		if role == entity.RoleSeller && conversation.SellerID == participantID {
			matched = append(matched, conversation)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].LastMessageAt.Equal(matched[j].LastMessageAt) {
			return matched[i].LastMessageAt.After(matched[j].LastMessageAt)
		}
		return matched[i].ID < matched[j].ID
	})
	total := int64(len(matched))
	matched = page(matched, limit, offset)
	return matched, total, nil
}

func (f *fakeConversationRepo) FindDirect(ctx context.Context, customerID, sellerID, productID string) (*entity.Conversation, error) {
	for _, conversation := range f.conversations {
		if conversation.CustomerID == customerID && conversation.SellerID == sellerID && conversation.ProductID == productID {
			return conversation, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (f *fakeConversationRepo) Update(ctx context.Context, conversation *entity.Conversation) error {
	f.conversations[conversation.ID] = conversation
	return nil
}

func (f *fakeConversationRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		f.nextID++
		message.ID = fmt.Sprintf("msg-%d", f.nextID)
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeConversationRepo) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	var matched []*entity.Message
	for _, message := range f.messages {
		if message.ConversationID == conversationID {
			matched = append(matched, message)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	total := int64(len(matched))
	matched = page(matched, limit, offset)
	return matched, total, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
