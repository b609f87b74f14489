package edge

import (
	"context"

	"github.com/dopetech/dopetech-api/models"
	"github.com/dopetech/dopetech-api/supabase"
)

// ProductImages lists a product's gallery ordered by display_order ascending.
// The ordering drives the frontend carousel and must not change. Image reads
// have no fallback dataset; they degrade to an empty list.
func (s *Service) ProductImages(ctx context.Context, productID int) []models.ProductImage {
	var images []models.ProductImage
	err := s.read.Query(ctx, "product_images", &images,
		[]supabase.Filter{supabase.Eq("product_id", productID)},
		&supabase.SortOrder{Column: "display_order", Ascending: true})
	if err != nil {
		s.log.Warn().Err(err).Int("product_id", productID).Msg("product image query failed, serving empty list")
		return []models.ProductImage{}
	}
	if images == nil {
		images = []models.ProductImage{}
	}
	return images
}

// HeroImages lists the active hero banners ordered by display_order
// ascending, degrading to an empty list on failure.
func (s *Service) HeroImages(ctx context.Context) []models.HeroImage {
	var images []models.HeroImage
	err := s.read.Query(ctx, "hero_images", &images,
		[]supabase.Filter{supabase.Eq("is_active", true)},
		&supabase.SortOrder{Column: "display_order", Ascending: true})
	if err != nil {
		s.log.Warn().Err(err).Msg("hero image query failed, serving empty list")
		return []models.HeroImage{}
	}
	if images == nil {
		images = []models.HeroImage{}
	}
	return images
}
