package edge

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/dopetech/dopetech-api/models"
	"github.com/dopetech/dopetech-api/supabase"
)

// Service is the cached edge resource layer: it wraps remote reads in a
// bounded-duration race and degrades to fallback data instead of failing.
// Reads go through the anon client, writes through the service-role client.
type Service struct {
	read    *supabase.Client
	admin   *supabase.Client
	timeout time.Duration
	log     zerolog.Logger

	// heroShowContentAbsent flips to true the first time the store rejects
	// the show_content column, so later inserts skip it outright.
	heroShowContentAbsent atomic.Bool
}

func NewService(read, admin *supabase.Client, timeout time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		read:    read,
		admin:   admin,
		timeout: timeout,
		log:     logger.With().Str("component", "edge").Logger(),
	}
}

// errTimeout marks the race losing to the timer. The in-flight remote call is
// not cancelled; its result is simply ignored.
var errTimeout = &supabase.RemoteError{Message: "request timeout - store query took too long"}

type queryResult struct {
	products []models.Product
	err      error
}

// visibleProducts races the store query against the configured timeout.
// First to settle wins; the loser is discarded without cancellation.
func (s *Service) visibleProducts(ctx context.Context) ([]models.Product, error) {
	ch := make(chan queryResult, 1)
	go func() {
		var products []models.Product
		err := s.read.Query(ctx, "products", &products,
			[]supabase.Filter{supabase.Eq("hidden_on_home", false)},
			&supabase.SortOrder{Column: "id", Ascending: true})
		ch <- queryResult{products: products, err: err}
	}()

	select {
	case r := <-ch:
		return r.products, r.err
	case <-time.After(s.timeout):
		return nil, errTimeout
	}
}

// productsOrFallback implements the degradation rule for product reads:
// error, timeout, and empty result all substitute the fallback dataset.
func (s *Service) productsOrFallback(ctx context.Context) []models.Product {
	products, err := s.visibleProducts(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("product query failed, serving fallback data")
		return FallbackProducts()
	}
	if len(products) == 0 {
		s.log.Info().Msg("no products in store, serving fallback data")
		return FallbackProducts()
	}
	return products
}
