package entity

// Product is the catalog view of a product, owned by an external service.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
