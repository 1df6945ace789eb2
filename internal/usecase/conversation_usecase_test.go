package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/pkg/errors"
)

func newTestConversationUseCase() (*ConversationUseCase, *fakeConversationRepo) {
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", DisplayName: "Ada Weaver"},
		"cust-2": {ID: "cust-2", DisplayName: "Grace Potter"},
	}}
	sellerRepo := &fakeSellerRepo{sellers: map[string]*entity.Seller{
		"sell-1": {ID: "sell-1", BusinessName: "Weaver Works", Status: entity.SellerStatusApproved},
	}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", SellerID: "sell-1", Title: "Hand-thrown mug", Status: entity.ProductStatusActive},
	}}

	conversationRepo := newFakeConversationRepo()
	identity := NewIdentityUseCase(customerRepo, sellerRepo)
	return NewConversationUseCase(conversationRepo, productRepo, identity), conversationRepo
}

func seedConversation(repo *fakeConversationRepo, id, customerID, sellerID, productID string, lastActivity time.Time) {
	repo.conversations[id] = &entity.Conversation{
		ID:            id,
		CustomerID:    customerID,
		SellerID:      sellerID,
		ProductID:     productID,
		CreatedAt:     lastActivity,
		LastMessageAt: lastActivity,
	}
}

func TestListMessagesOrdering(t *testing.T) {
	uc, repo := newTestConversationUseCase()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedConversation(repo, "conv-a", "cust-1", "sell-1", "", base)

	// Inserted out of order, including a timestamp tie between m-2 and m-1.
	repo.messages = []*entity.Message{
		{ID: "m-3", ConversationID: "conv-a", SenderID: "sell-1", SenderRole: entity.RoleSeller, Content: "third", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "m-2", ConversationID: "conv-a", SenderID: "cust-1", SenderRole: entity.RoleCustomer, Content: "second", CreatedAt: base},
		{ID: "m-1", ConversationID: "conv-a", SenderID: "cust-1", SenderRole: entity.RoleCustomer, Content: "first", CreatedAt: base},
	}

	messages, total, err := uc.ListMessages(ctx, "cust-1", "conv-a", 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, messages, 3)
	assert.Equal(t, "m-1", messages[0].ID)
	assert.Equal(t, "m-2", messages[1].ID)
	assert.Equal(t, "m-3", messages[2].ID)
}

func TestListMessagesEnrichesSenders(t *testing.T) {
	uc, repo := newTestConversationUseCase()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedConversation(repo, "conv-a", "cust-1", "sell-1", "", base)
	repo.messages = []*entity.Message{
		{ID: "m-1", ConversationID: "conv-a", SenderID: "cust-1", SenderRole: entity.RoleCustomer, Content: "hi", CreatedAt: base},
		{ID: "m-2", ConversationID: "conv-a", SenderID: "sell-1", SenderRole: entity.RoleSeller, Content: "hello", CreatedAt: base.Add(time.Minute)},
	}

	messages, _, err := uc.ListMessages(ctx, "sell-1", "conv-a", 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Ada Weaver", messages[0].Sender.DisplayName)
	assert.Equal(t, "Weaver Works", messages[1].Sender.DisplayName)
}

func TestListMessagesKeepsMessageWhenSenderMissing(t *testing.T) {
	uc, repo := newTestConversationUseCase()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedConversation(repo, "conv-a", "cust-1", "sell-1", "", base)
	repo.messages = []*entity.Message{
		{ID: "m-1", ConversationID: "conv-a", SenderID: "deleted-user", SenderRole: entity.RoleCustomer, Content: "orphan", CreatedAt: base},
	}

	messages, _, err := uc.ListMessages(ctx, "cust-1", "conv-a", 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "orphan", messages[0].Content)
	assert.Equal(t, "Unknown user", messages[0].Sender.DisplayName)
}

func TestListMessagesEmptyThread(t *testing.T) {
	uc, repo := newTestConversationUseCase()

	seedConversation(repo, "conv-a", "cust-1", "sell-1", "", time.Now())

	messages, total, err := uc.ListMessages(context.Background(), "cust-1", "conv-a", 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, messages)
}

func TestListMessagesUnknownConversation(t *testing.T) {
	uc, _ := newTestConversationUseCase()

	_, _, err := uc.ListMessages(context.Background(), "cust-1", "no-such-thread", 0, 0)
	assert.True(t, errors.IsNotFound(err), "expected NotFound, got %v", err)
}

func TestListMessagesAccessDenied(t *testing.T) {
	uc, repo := newTestConversationUseCase()

	seedConversation(repo, "conv-a", "cust-1", "sell-1", "", time.Now())

	_, _, err := uc.ListMessages(context.Background(), "cust-2", "conv-a", 0, 0)
	assert.True(t, errors.IsForbidden(err), "expected Forbidden, got %v", err)
	assert.False(t, errors.IsNotFound(err))
}

func TestListConversationsOrdering(t *testing.T) {
	uc, repo := newTestConversationUseCase()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedConversation(repo, "conv-b", "cust-1", "sell-1", "", base)
	seedConversation(repo, "conv-c", "cust-1", "sell-1", "prod-1", base.Add(time.Hour))
	// Same last activity as conv-b; id breaks the tie ascending.
	seedConversation(repo, "conv-a", "cust-1", "sell-1", "", base)

	views, total, err := uc.ListConversations(context.Background(), "cust-1", entity.RoleCustomer, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, views, 3)
	assert.Equal(t, "conv-c", views[0].ID)
	assert.Equal(t, "conv-a", views[1].ID)
	assert.Equal(t, "conv-b", views[2].ID)
}

func TestListConversationsEnrichment(t *testing.T) {
	uc, repo := newTestConversationUseCase()

	seedConversation(repo, "conv-a", "cust-1", "sell-1", "prod-1", time.Now())

	views, _, err := uc.ListConversations(context.Background(), "cust-1", entity.RoleCustomer, 0, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Weaver Works", views[0].Counterpart.DisplayName)
	require.NotNil(t, views[0].Product)
	assert.Equal(t, "Hand-thrown mug", views[0].Product.Title)

	// Seller side sees the customer as counterpart.
	views, _, err = uc.ListConversations(context.Background(), "sell-1", entity.RoleSeller, 0, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Ada Weaver", views[0].Counterpart.DisplayName)
}

func TestListConversationsRejectsUnknownRole(t *testing.T) {
	uc, _ := newTestConversationUseCase()

	_, _, err := uc.ListConversations(context.Background(), "cust-1", entity.Role("moderator"), 0, 0)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetConversationAccessDenied(t *testing.T) {
	uc, repo := newTestConversationUseCase()

	seedConversation(repo, "conv-a", "cust-1", "sell-1", "", time.Now())

	_, err := uc.GetConversation(context.Background(), "cust-2", "conv-a")
	assert.True(t, errors.IsForbidden(err))
}

func TestStartConversationReusesExistingThread(t *testing.T) {
	uc, repo := newTestConversationUseCase()
	ctx := context.Background()

	first, err := uc.StartConversation(ctx, "cust-1", StartConversationInput{SellerID: "sell-1", ProductID: "prod-1"})
	require.NoError(t, err)

	second, err := uc.StartConversation(ctx, "cust-1", StartConversationInput{SellerID: "sell-1", ProductID: "prod-1"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.conversations, 1)
}

func TestStartConversationSeparateThreadPerProduct(t *testing.T) {
	uc, repo := newTestConversationUseCase()
	ctx := context.Background()

	withProduct, err := uc.StartConversation(ctx, "cust-1", StartConversationInput{SellerID: "sell-1", ProductID: "prod-1"})
	require.NoError(t, err)

	withoutProduct, err := uc.StartConversation(ctx, "cust-1", StartConversationInput{SellerID: "sell-1"})
	require.NoError(t, err)

	assert.NotEqual(t, withProduct.ID, withoutProduct.ID)
	assert.Len(t, repo.conversations, 2)
}

func TestStartConversationUnknownSeller(t *testing.T) {
	uc, _ := newTestConversationUseCase()

	_, err := uc.StartConversation(context.Background(), "cust-1", StartConversationInput{SellerID: "nobody"})
	assert.True(t, errors.IsNotFound(err))
}

func TestSendMessageSetsRoleFromConversation(t *testing.T) {
	uc, repo := newTestConversationUseCase()
	ctx := context.Background()

	seedConversation(repo, "conv-a", "cust-1", "sell-1", "", time.Now().Add(-time.Hour))

	fromCustomer, err := uc.SendMessage(ctx, "cust-1", "conv-a", "hello there")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, fromCustomer.SenderRole)

	fromSeller, err := uc.SendMessage(ctx, "sell-1", "conv-a", "hi!")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, fromSeller.SenderRole)

	// Last-activity view follows the newest message.
	conversation := repo.conversations["conv-a"]
	assert.Equal(t, "hi!", conversation.LastMessage)
	assert.Equal(t, fromSeller.CreatedAt, conversation.LastMessageAt)
}

func TestSendMessageAccessDenied(t *testing.T) {
	uc, repo := newTestConversationUseCase()

	seedConversation(repo, "conv-a", "cust-1", "sell-1", "", time.Now())

	_, err := uc.SendMessage(context.Background(), "cust-2", "conv-a", "let me in")
	assert.True(t, errors.IsForbidden(err))
	assert.Empty(t, repo.messages)
}
