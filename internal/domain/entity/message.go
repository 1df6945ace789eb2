package entity

import "time"

type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversation_id"`
	SenderID       string    `json:"sender_id" firestore:"sender_id"`
	SenderRole     Role      `json:"sender_type" firestore:"sender_type"`
	Content        string    `json:"content" firestore:"content"`
	CreatedAt      time.Time `json:"created_at" firestore:"created_at"`
}
