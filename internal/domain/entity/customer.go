package entity

import "time"

type Customer struct {
	ID          string    `json:"id" firestore:"id"`
	DisplayName string    `json:"display_name" firestore:"display_name"`
	Email       string    `json:"email,omitempty" firestore:"email,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty" firestore:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
}

func (c *Customer) Identity() *Identity {
	return &Identity{
		DisplayName: c.DisplayName,
		PhotoURL:    c.PhotoURL,
	}
}
