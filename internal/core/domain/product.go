package domain

// Product is a sellable item. The ID is assigned by the store on first save;
// products are never mutated afterwards, only deleted.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
