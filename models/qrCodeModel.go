package models

type QRCode struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}
