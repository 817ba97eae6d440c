package models

// Category groups products; owned by the backend, read-only on the client.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Image is a product picture reference served by the backend.
type Image struct {
	ID          int64  `json:"id"`
	FileName    string `json:"fileName"`
	DownloadURL string `json:"downloadUrl"`
}

// Product is a catalog entry managed through the admin console.
type Product struct {
	ID          int64    `json:"productId"`
	Name        string   `json:"productName"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	Inventory   int64    `json:"inventory"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Images      []Image  `json:"images"`
}

// CategoryName is a nil-safe accessor used by table columns.
func (p *Product) CategoryName() string {
	if p == nil || p.Category.Name == "" {
		return "Uncategorized"
	}
	return p.Category.Name
}
