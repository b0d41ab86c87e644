package models

// Product is a catalog entry served by GET /api/products.
// Price is display text, already currency formatted.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}
