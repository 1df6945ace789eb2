package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/pkg/errors"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

func (r *firestoreConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}

	now := time.Now()
	conversation.CreatedAt = now
	// A fresh thread's last activity is its creation time; listing orders on
	// this field so new threads surface immediately.
	conversation.LastMessageAt = now

	_, err := r.client.Collection("conversations").Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return classify("Conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	var conversation entity.Conversation

	err := readWithRetry(ctx, "conversations.get", func(ctx context.Context) error {
		doc, err := r.client.Collection("conversations").Doc(id).Get(ctx)
		if err != nil {
			return classify("Conversation", err)
		}

		if err := doc.DataTo(&conversation); err != nil {
			return errors.Internal("Failed to parse conversation data", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

func (r *firestoreConversationRepository) ListByParticipant(ctx context.Context, participantID string, role entity.Role, limit, offset int) ([]*entity.Conversation, int64, error) {
	field := "customer_id"
	if role == entity.RoleSeller {
		field = "seller_id"
	}

	var conversations []*entity.Conversation
	var total int64

	err := readWithRetry(ctx, "conversations.list", func(ctx context.Context) error {
		conversations = conversations[:0]

		query := r.client.Collection("conversations").
			Where(field, "==", participantID).
			OrderBy("last_message_at", firestore.Desc).
			OrderBy("id", firestore.Asc)

		countDocs, err := query.Select().Documents(ctx).GetAll()
		if err != nil {
			return classify("Conversations", err)
		}
		total = int64(len(countDocs))

		if limit > 0 {
			query = query.Limit(limit)
		}
		if offset > 0 {
			query = query.Offset(offset)
		}

		iter := query.Documents(ctx)
		defer iter.Stop()

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return classify("Conversations", err)
			}

			var conversation entity.Conversation
			if err := doc.DataTo(&conversation); err != nil {
				return errors.Internal("Failed to parse conversation data", err)
			}
			conversations = append(conversations, &conversation)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return conversations, total, nil
}

func (r *firestoreConversationRepository) FindDirect(ctx context.Context, customerID, sellerID, productID string) (*entity.Conversation, error) {
	var conversation entity.Conversation

	err := readWithRetry(ctx, "conversations.find_direct", func(ctx context.Context) error {
		// product_id is stored even when empty so the unscoped thread of a
		// pair stays distinguishable from its product threads.
		query := r.client.Collection("conversations").
			Where("customer_id", "==", customerID).
			Where("seller_id", "==", sellerID).
			Where("product_id", "==", productID).
			Limit(1)

		iter := query.Documents(ctx)
		defer iter.Stop()

		doc, err := iter.Next()
		if err == iterator.Done {
			return errors.NotFound("Conversation", nil)
		}
		if err != nil {
			return classify("Conversation", err)
		}

		if err := doc.DataTo(&conversation); err != nil {
			return errors.Internal("Failed to parse conversation data", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

func (r *firestoreConversationRepository) Update(ctx context.Context, conversation *entity.Conversation) error {
	_, err := r.client.Collection("conversations").Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return classify("Conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return classify("Message", err)
	}

	return nil
}

func (r *firestoreConversationRepository) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	var messages []*entity.Message
	var total int64

	err := readWithRetry(ctx, "messages.list", func(ctx context.Context) error {
		messages = messages[:0]

		query := r.client.Collection("messages").
			Where("conversation_id", "==", conversationID).
			OrderBy("created_at", firestore.Asc).
			OrderBy("id", firestore.Asc)

		countDocs, err := query.Select().Documents(ctx).GetAll()
		if err != nil {
			return classify("Messages", err)
		}
		total = int64(len(countDocs))

		if limit > 0 {
			query = query.Limit(limit)
		}
		if offset > 0 {
			query = query.Offset(offset)
		}

		iter := query.Documents(ctx)
		defer iter.Stop()

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return classify("Messages", err)
			}

			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				return errors.Internal("Failed to parse message data", err)
			}
			messages = append(messages, &message)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}
