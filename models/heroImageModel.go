package models

// HeroImage backs the home page carousel. ShowContent is schema-optional on
// older deployments, hence the pointer.
type HeroImage struct {
	ID            int    `json:"id"`
	ImageFileName string `json:"image_file_name"`
	ImageURL      string `json:"image_url"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Description   string `json:"description"`
	DisplayOrder  int    `json:"display_order"`
	IsActive      bool   `json:"is_active"`
	ShowContent   *bool  `json:"show_content,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}
