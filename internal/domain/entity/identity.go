package entity

// Role tags which profile table a participant id resolves against. A message
// sender is either a customer or a seller, never both; lookups must dispatch
// on this tag instead of joining the two tables on one column.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleSeller
}

// Identity is the resolved display identity of a participant.
type Identity struct {
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// UnknownIdentity is the placeholder callers fall back to when resolution
// fails; a broken profile must not drop the message it authored.
func UnknownIdentity() *Identity {
	return &Identity{DisplayName: "Unknown user"}
}
