package domain

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// FeeRate is the flat processing fee applied to every order.
const FeeRate = 0.2

type Order struct {
	ID        string      `json:"id"`
	ProductID string      `json:"product_id"`
	Price     float64     `json:"price"`
	Fee       float64     `json:"fee"`
	Total     float64     `json:"total"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"status"`
}

// NewOrder snapshots the product price at creation time. Fee and total are
// derived here exactly once and never recomputed, even if the product's
// price changes later.
func NewOrder(productID string, price float64, quantity int) Order {
	return Order{
		ProductID: productID,
		Price:     price,
		Fee:       FeeRate * price,
		Total:     (1 + FeeRate) * price,
		Quantity:  quantity,
		Status:    OrderStatusPending,
	}
}
