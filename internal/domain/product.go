package domain

type Product struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
	CreatedOn   string `json:"created_on"`
}
