package edge

import (
	"context"

	"github.com/dopetech/dopetech-api/models"
	"github.com/dopetech/dopetech-api/supabase"
)

// Write operations bypass the cache path entirely and use the service-role
// client. Their responses must never carry cache headers.

// ProductInput carries the writable product columns. Rating and Reviews are
// normally zero on insert but may be set explicitly on this admin path.
type ProductInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	ImageURL      string   `json:"image_url"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Features      []string `json:"features"`
	Color         *string  `json:"color"`
	InStock       bool     `json:"in_stock"`
	Discount      int      `json:"discount"`
}

// AddProduct inserts a product with the store assigning the id. Defaults:
// original_price falls back to price, features to [], hidden_on_home to
// false.
func (s *Service) AddProduct(ctx context.Context, input ProductInput) (models.Product, error) {
	originalPrice := input.OriginalPrice
	if originalPrice == 0 {
		originalPrice = input.Price
	}
	features := input.Features
	if features == nil {
		features = []string{}
	}

	record := map[string]any{
		"name":           input.Name,
		"description":    input.Description,
		"price":          input.Price,
		"original_price": originalPrice,
		"image_url":      input.ImageURL,
		"category":       input.Category,
		"rating":         input.Rating,
		"reviews":        input.Reviews,
		"features":       features,
		"color":          input.Color,
		"in_stock":       input.InStock,
		"discount":       input.Discount,
		"hidden_on_home": false,
	}

	var created models.Product
	err := s.admin.Insert(ctx, "products", record, &created)
	return created, err
}

// productColumns is the writable column set for product updates. Anything
// else in a request body is dropped before the patch is sent.
var productColumns = map[string]bool{
	"name":           true,
	"description":    true,
	"price":          true,
	"original_price": true,
	"image_url":      true,
	"category":       true,
	"rating":         true,
	"reviews":        true,
	"features":       true,
	"color":          true,
	"in_stock":       true,
	"discount":       true,
	"hidden_on_home": true,
}

// UpdateProduct applies a partial update to one product. Only the columns
// present in fields are sent, so omitted fields keep their stored values.
func (s *Service) UpdateProduct(ctx context.Context, id int, fields map[string]any) (models.Product, error) {
	patch := make(map[string]any, len(fields))
	for column, value := range fields {
		if productColumns[column] {
			patch[column] = value
		}
	}

	if len(patch) == 0 {
		// Nothing writable in the request; return the current row untouched.
		var current models.Product
		err := s.admin.QueryOne(ctx, "products", &current, supabase.Eq("id", id))
		return current, err
	}

	var updated models.Product
	err := s.admin.Update(ctx, "products", patch, &updated, supabase.Eq("id", id))
	return updated, err
}

// DeleteProduct removes a product, deleting its images first because the
// store does not cascade the foreign key. An image-delete failure is logged
// and does not abort the product delete.
func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	if err := s.admin.Delete(ctx, "product_images", supabase.Eq("product_id", id)); err != nil {
		s.log.Warn().Err(err).Int("product_id", id).Msg("failed to delete product images, continuing with product delete")
	}
	return s.admin.Delete(ctx, "products", supabase.Eq("id", id))
}

// HeroImageInput is the metadata stored alongside an uploaded hero banner.
type HeroImageInput struct {
	FileName     string
	URL          string
	Title        string
	Subtitle     string
	Description  string
	DisplayOrder int
	ShowContent  bool
}

// InsertHeroImage stores hero banner metadata. The show_content column is
// schema-optional: the first insert the store rejects over it flips a
// process-wide flag and is retried once without the column, so the row is
// never double-inserted and later inserts skip the column entirely.
func (s *Service) InsertHeroImage(ctx context.Context, input HeroImageInput) (models.HeroImage, error) {
	record := map[string]any{
		"image_file_name": input.FileName,
		"image_url":       input.URL,
		"title":           input.Title,
		"subtitle":        input.Subtitle,
		"description":     input.Description,
		"display_order":   input.DisplayOrder,
		"is_active":       true,
	}

	withShowContent := !s.heroShowContentAbsent.Load()
	if withShowContent {
		record["show_content"] = input.ShowContent
	}

	var created models.HeroImage
	err := s.admin.Insert(ctx, "hero_images", record, &created)
	if err != nil && withShowContent && supabase.IsColumnMissing(err, "show_content") {
		s.heroShowContentAbsent.Store(true)
		s.log.Warn().Msg("show_content column not found, inserting without it")
		delete(record, "show_content")
		err = s.admin.Insert(ctx, "hero_images", record, &created)
	}
	return created, err
}
