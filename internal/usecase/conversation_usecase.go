package usecase

import (
	"context"
	"time"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/pkg/errors"
	"artisanmarket/pkg/logger"
)

// ConversationUseCase owns conversation threads and their messages. Access
// checks happen here, not in the storage layer; a row-level policy that
// silently filters rows produced "unknown error" failures in the past.
type ConversationUseCase struct {
	conversationRepo repository.ConversationRepository
	productRepo      repository.ProductRepository
	identity         *IdentityUseCase
}

func NewConversationUseCase(
	conversationRepo repository.ConversationRepository,
	productRepo repository.ProductRepository,
	identity *IdentityUseCase,
) *ConversationUseCase {
	return &ConversationUseCase{
		conversationRepo: conversationRepo,
		productRepo:      productRepo,
		identity:         identity,
	}
}

type StartConversationInput struct {
	SellerID       string
	ProductID      string
	InitialMessage string
}

type ConversationView struct {
	*entity.Conversation
	Counterpart *entity.Identity `json:"counterpart"`
	Product     *entity.Product  `json:"product,omitempty"`
}

type MessageView struct {
	*entity.Message
	Sender *entity.Identity `json:"sender"`
}

// StartConversation opens a thread from a customer to a seller. An existing
// thread for the same (customer, seller, product) triple is reused; the
// surrogate id stays the sole handle either way.
func (uc *ConversationUseCase) StartConversation(ctx context.Context, customerID string, input StartConversationInput) (*ConversationView, error) {
	if _, err := uc.identity.Resolve(ctx, input.SellerID, entity.RoleSeller); err != nil {
		return nil, err
	}

	if input.ProductID != "" {
		product, err := uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if product.SellerID != input.SellerID {
			return nil, errors.BadRequest("Product does not belong to this seller", nil)
		}
	}

	conversation, err := uc.conversationRepo.FindDirect(ctx, customerID, input.SellerID, input.ProductID)
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, err
		}

		conversation = &entity.Conversation{
			CustomerID: customerID,
			SellerID:   input.SellerID,
			ProductID:  input.ProductID,
		}
		if err := uc.conversationRepo.Create(ctx, conversation); err != nil {
			return nil, err
		}
	}

	if input.InitialMessage != "" {
		if _, err := uc.SendMessage(ctx, customerID, conversation.ID, input.InitialMessage); err != nil {
			logger.Warn("StartConversation: failed to send initial message for conversation %s: %v", conversation.ID, err)
		}
	}

	return uc.buildConversationView(ctx, conversation, entity.RoleCustomer), nil
}

// ListConversations returns the caller's threads under the claimed role,
// newest activity first.
func (uc *ConversationUseCase) ListConversations(ctx context.Context, participantID string, role entity.Role, limit, offset int) ([]*ConversationView, int64, error) {
	if !role.Valid() {
		return nil, 0, errors.BadRequest("Unknown participant role", nil)
	}

	conversations, total, err := uc.conversationRepo.ListByParticipant(ctx, participantID, role, limit, offset)
	if err != nil {
		logger.Error("ListConversations: failed to list for %s %s: %v", role, participantID, err)
		return nil, 0, err
	}

	views := make([]*ConversationView, 0, len(conversations))
	for _, conversation := range conversations {
		views = append(views, uc.buildConversationView(ctx, conversation, role))
	}

	return views, total, nil
}

func (uc *ConversationUseCase) GetConversation(ctx context.Context, callerID, conversationID string) (*ConversationView, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	role, ok := conversation.PartyRole(callerID)
	if !ok {
		return nil, errors.Forbidden("Caller is not a party to this conversation", nil)
	}

	return uc.buildConversationView(ctx, conversation, role), nil
}

// ListMessages returns the full thread ascending by creation time. The
// conversation must exist (NotFound otherwise) and the caller must be one of
// its two parties (Forbidden otherwise); an empty thread is an empty slice.
func (uc *ConversationUseCase) ListMessages(ctx context.Context, callerID, conversationID string, limit, offset int) ([]*MessageView, int64, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, 0, err
	}

	if _, ok := conversation.PartyRole(callerID); !ok {
		logger.Warn("ListMessages: caller %s is not a party to conversation %s", callerID, conversationID)
		return nil, 0, errors.Forbidden("Caller is not a party to this conversation", nil)
	}

	messages, total, err := uc.conversationRepo.ListMessages(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*MessageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, &MessageView{
			Message: message,
			Sender:  uc.identity.ResolveOrPlaceholder(ctx, message.SenderID, message.SenderRole),
		})
	}

	return views, total, nil
}

// SendMessage appends a message authored by the caller. The sender role is
// taken from the caller's side of the conversation, never from the request.
func (uc *ConversationUseCase) SendMessage(ctx context.Context, callerID, conversationID, content string) (*MessageView, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	role, ok := conversation.PartyRole(callerID)
	if !ok {
		return nil, errors.Forbidden("Caller is not a party to this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       callerID,
		SenderRole:     role,
		Content:        content,
		CreatedAt:      time.Now(),
	}

	if err := uc.conversationRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conversation.LastMessage = content
	conversation.LastMessageAt = message.CreatedAt
	if err := uc.conversationRepo.Update(ctx, conversation); err != nil {
		logger.Warn("SendMessage: failed to bump last activity on conversation %s: %v", conversationID, err)
	}

	return &MessageView{
		Message: message,
		Sender:  uc.identity.ResolveOrPlaceholder(ctx, callerID, role),
	}, nil
}

func (uc *ConversationUseCase) buildConversationView(ctx context.Context, conversation *entity.Conversation, viewerRole entity.Role) *ConversationView {
	view := &ConversationView{Conversation: conversation}

	counterpartID, counterpartRole := conversation.Counterpart(viewerRole)
	view.Counterpart = uc.identity.ResolveOrPlaceholder(ctx, counterpartID, counterpartRole)

	if conversation.ProductID != "" {
		product, err := uc.productRepo.GetByID(ctx, conversation.ProductID)
		if err == nil {
			view.Product = product
		} else {
			logger.Warn("Conversation %s references product %s that failed to load: %v", conversation.ID, conversation.ProductID, err)
		}
	}

	return view
}
