package entity

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order lifecycle transitions are owned elsewhere; this subsystem only reads
// the status to decide which line items count toward units sold.
type Order struct {
	ID     string `json:"id" firestore:"id"`
	Status string `json:"status" firestore:"status"`
}

type OrderItem struct {
	OrderID   string `json:"order_id" firestore:"order_id"`
	ProductID string `json:"product_id" firestore:"product_id"`
	Quantity  int64  `json:"quantity" firestore:"quantity"`
}
