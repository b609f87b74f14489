package edge

import (
	"context"
	"math/rand"
	"sync"

	"github.com/dopetech/dopetech-api/models"
	"github.com/dopetech/dopetech-api/supabase"
)

// Products lists the home-visible products, serving fallback data when the
// store is unreachable, slow, or empty.
func (s *Service) Products(ctx context.Context) []models.Product {
	return s.productsOrFallback(ctx)
}

// ProductByID fetches one product. Returns supabase.ErrNotFound on a miss;
// single-product reads have no fallback.
func (s *Service) ProductByID(ctx context.Context, id int) (models.Product, error) {
	var product models.Product
	err := s.read.QueryOne(ctx, "products", &product, supabase.Eq("id", id))
	return product, err
}

// ProductsByCategory lists home-visible products in one category. Degrades to
// an empty list rather than failing.
func (s *Service) ProductsByCategory(ctx context.Context, category string) []models.Product {
	var products []models.Product
	err := s.read.Query(ctx, "products", &products,
		[]supabase.Filter{
			supabase.Eq("category", category),
			supabase.Eq("hidden_on_home", false),
		},
		&supabase.SortOrder{Column: "id", Ascending: true})
	if err != nil {
		s.log.Warn().Err(err).Str("category", category).Msg("category query failed, serving empty list")
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}

// DopePicks returns up to max randomly sampled products, from live data when
// possible and from the fallback dataset otherwise.
func (s *Service) DopePicks(ctx context.Context, max int) []models.Product {
	shuffled := shuffleProducts(s.productsOrFallback(ctx))
	if max > len(shuffled) {
		max = len(shuffled)
	}
	return shuffled[:max]
}

// WeeklyPicks returns exactly max products, cyclically duplicating the
// shuffled pool when it is smaller than max.
func (s *Service) WeeklyPicks(ctx context.Context, max int) []models.Product {
	return duplicateToFill(shuffleProducts(s.productsOrFallback(ctx)), max)
}

// ProductsWithImages resolves each product's image gallery alongside the
// product list itself. Galleries are fetched in parallel, one goroutine per
// product, each writing only its own index.
func (s *Service) ProductsWithImages(ctx context.Context) []models.Product {
	products := s.productsOrFallback(ctx)

	var wg sync.WaitGroup
	for i := range products {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			products[i].Images = s.ProductImages(ctx, products[i].ID)
		}(i)
	}
	wg.Wait()

	return products
}

// shuffleProducts returns a uniformly shuffled copy (Fisher-Yates via
// rand.Shuffle; the old comparator-based shuffle was biased).
func shuffleProducts(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// duplicateToFill pads products up to max by cycling through the slice.
// Every copy gets the synthetic id base*1000+i so repeats stay
// distinguishable in a list. The encoding collides once a cycle holds 1000+
// rows, but consumers key rows by this numeric id, so it is kept as-is.
func duplicateToFill(products []models.Product, max int) []models.Product {
	if len(products) == 0 {
		return []models.Product{}
	}
	if max > len(products) {
		out := make([]models.Product, 0, max)
		for i := 0; i < max; i++ {
			product := products[i%len(products)]
			product.ID = product.ID*1000 + i
			out = append(out, product)
		}
		return out
	}
	return products[:max]
}
