package entity

import "time"

const (
	SellerStatusPending  = "pending"
	SellerStatusApproved = "approved"
	SellerStatusRejected = "rejected"
)

type Seller struct {
	ID           string `json:"id" firestore:"id"`
	BusinessName string `json:"business_name" firestore:"business_name"`
	Status       string `json:"status" firestore:"status"`

	// Independent of approval status; a seller can be approved with an
	// unfinished profile and vice versa.
	ProfileCompleted bool `json:"profile_completed" firestore:"profile_completed"`

	PhotoURL  string    `json:"photo_url,omitempty" firestore:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}

func (s *Seller) Identity() *Identity {
	return &Identity{
		DisplayName: s.BusinessName,
		PhotoURL:    s.PhotoURL,
	}
}
