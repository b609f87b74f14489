package models

type ProductImage struct {
	ID           int    `json:"id"`
	ProductID    int    `json:"product_id"`
	ImageURL     string `json:"image_url"`
	FileName     string `json:"file_name,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsPrimary    bool   `json:"is_primary"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Product mirrors the products table. ImageURL stays the primary image for
// backward compatibility; Images carries the full gallery when a handler
// resolves it.
type Product struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	OriginalPrice float64        `json:"original_price"`
	ImageURL      string         `json:"image_url"`
	Category      string         `json:"category"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	Features      []string       `json:"features"`
	Color         *string        `json:"color,omitempty"`
	InStock       bool           `json:"in_stock"`
	Discount      int            `json:"discount"`
	HiddenOnHome  bool           `json:"hidden_on_home"`
	Images        []ProductImage `json:"images,omitempty"`
}
