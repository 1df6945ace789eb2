package entity

import "time"

// Conversation pairs exactly one customer and one seller, optionally scoped
// to a product. Identity is the surrogate id; the same pair may hold several
// threads (one per product, or none).
type Conversation struct {
	ID         string `json:"id" firestore:"id"`
	CustomerID string `json:"customer_id" firestore:"customer_id"`
	SellerID   string `json:"seller_id" firestore:"seller_id"`
	// Stored even when empty; lookups filter on the exact triple.
	ProductID string `json:"product_id,omitempty" firestore:"product_id"`

	CreatedAt time.Time `json:"created_at" firestore:"created_at"`

	// Derived last-activity view; the only fields mutated after creation.
	LastMessage   string    `json:"last_message,omitempty" firestore:"last_message,omitempty"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"last_message_at"`
}

// PartyRole reports the role under which userID participates, if at all.
func (c *Conversation) PartyRole(userID string) (Role, bool) {
	switch userID {
	case c.CustomerID:
		return RoleCustomer, true
	case c.SellerID:
		return RoleSeller, true
	}
	return "", false
}

// Counterpart returns the id and role of the other party relative to role.
func (c *Conversation) Counterpart(role Role) (string, Role) {
	if role == RoleCustomer {
		return c.SellerID, RoleSeller
	}
	return c.CustomerID, RoleCustomer
}
