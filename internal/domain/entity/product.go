// Package entity contains the core business objects of the storefront.
package entity

// Product is a catalog record as served by the backend. The storefront never
// mutates products; it only renders them and snapshots them into cart lines.
type Product struct {
	ID          int64   `json:"id"`
	CategoryID  int64   `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Size        string  `json:"size"`
	InStock     bool    `json:"in_stock"`
}

// Category groups products for the catalog browse views.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
