package repository

import (
	"context"

	"artisanmarket/internal/domain/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)

	// ListByParticipant returns conversations where the participant holds the
	// given role, ordered by last activity descending, id ascending on ties.
	ListByParticipant(ctx context.Context, participantID string, role entity.Role, limit, offset int) ([]*entity.Conversation, int64, error)

	// FindDirect locates an existing thread for the exact
	// (customer, seller, product) triple. productID may be empty.
	FindDirect(ctx context.Context, customerID, sellerID, productID string) (*entity.Conversation, error)

	Update(ctx context.Context, conversation *entity.Conversation) error

	// Message methods
	CreateMessage(ctx context.Context, message *entity.Message) error

	// ListMessages returns the thread ascending by created timestamp, id
	// ascending on ties. A conversation with no messages yields an empty
	// slice, not an error.
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error)
}
