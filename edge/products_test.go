package edge

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dopetech/dopetech-api/models"
	"github.com/dopetech/dopetech-api/supabase"
)

func newTestService(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	read := supabase.NewClient(srv.URL, "anon-key", "test")
	admin := supabase.NewClient(srv.URL, "service-key", "test-admin")
	return NewService(read, admin, timeout, zerolog.Nop())
}

func fallbackIDs() map[int]bool {
	ids := make(map[int]bool)
	for _, p := range FallbackProducts() {
		ids[p.ID] = true
	}
	return ids
}

func TestProductsServesLiveRows(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.false", r.URL.Query().Get("hidden_on_home"))
		assert.Equal(t, "id.asc", r.URL.Query().Get("order"))
		w.Write([]byte(`[{"id":10,"name":"Live A"},{"id":11,"name":"Live B"}]`))
	}, time.Second)

	products := svc.Products(context.Background())
	require.Len(t, products, 2)
	assert.Equal(t, 10, products[0].ID)
	assert.Equal(t, 11, products[1].ID)
}

func TestProductsFallsBackOnRemoteError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}, time.Second)

	products := svc.Products(context.Background())
	require.Len(t, products, 5)
	assert.Equal(t, "Gaming Keyboard Pro", products[0].Name)
}

func TestProductsFallsBackOnEmptyResult(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}, time.Second)

	products := svc.Products(context.Background())
	require.Len(t, products, 5)
}

func TestProductsFallsBackOnTimeout(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(250 * time.Millisecond)
		w.Write([]byte(`[{"id":99,"name":"Too Late"}]`))
	}, 20*time.Millisecond)

	start := time.Now()
	products := svc.Products(context.Background())
	assert.Less(t, time.Since(start), 200*time.Millisecond)
	require.Len(t, products, 5)
	for _, p := range products {
		assert.NotEqual(t, 99, p.ID)
	}
}

func TestDopePicksReturnsDistinctFallbackRecords(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, time.Second)

	valid := fallbackIDs()
	for n := 1; n <= 5; n++ {
		picks := svc.DopePicks(context.Background(), n)
		require.Len(t, picks, n)

		seen := make(map[int]bool)
		for _, p := range picks {
			assert.True(t, valid[p.ID], "pick id %d not in fallback set", p.ID)
			assert.False(t, seen[p.ID], "duplicate pick id %d", p.ID)
			seen[p.ID] = true
		}
	}
}

func TestDopePicksCappedAtAvailable(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, time.Second)

	picks := svc.DopePicks(context.Background(), 10)
	assert.Len(t, picks, 5)
}

func TestWeeklyPicksFillsRequestedCount(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, time.Second)

	picks := svc.WeeklyPicks(context.Background(), 8)
	require.Len(t, picks, 8)

	seen := make(map[int]bool)
	for _, p := range picks {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestDuplicateToFillSynthesizesIDs(t *testing.T) {
	base := []models.Product{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
	}

	filled := duplicateToFill(base, 7)
	require.Len(t, filled, 7)
	for i, p := range filled {
		source := base[i%len(base)]
		assert.Equal(t, source.ID*1000+i, p.ID)
		assert.Equal(t, source.Name, p.Name)
	}
}

func TestDuplicateToFillTruncates(t *testing.T) {
	base := []models.Product{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	filled := duplicateToFill(base, 3)
	require.Len(t, filled, 3)
	// No padding needed, so ids stay untouched.
	for i, p := range filled {
		assert.Equal(t, base[i].ID, p.ID)
	}
}

func TestDuplicateToFillEmptyInput(t *testing.T) {
	assert.Empty(t, duplicateToFill(nil, 4))
}

func TestProductsByCategoryDegradesToEmptyList(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, time.Second)

	products := svc.ProductsByCategory(context.Background(), "keyboard")
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductImagesOrderedByDisplayOrder(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.7", r.URL.Query().Get("product_id"))
		assert.Equal(t, "display_order.asc", r.URL.Query().Get("order"))
		w.Write([]byte(`[{"id":1,"product_id":7,"display_order":0},{"id":2,"product_id":7,"display_order":1}]`))
	}, time.Second)

	images := svc.ProductImages(context.Background(), 7)
	require.Len(t, images, 2)
	assert.Equal(t, 0, images[0].DisplayOrder)
	assert.Equal(t, 1, images[1].DisplayOrder)
}

func TestProductsWithImagesResolvesGalleriesInParallel(t *testing.T) {
	const galleryDelay = 80 * time.Millisecond
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "product_images") {
			time.Sleep(galleryDelay)
			pid := strings.TrimPrefix(r.URL.Query().Get("product_id"), "eq.")
			fmt.Fprintf(w, `[{"id":%s,"product_id":%s,"display_order":0}]`, pid, pid)
			return
		}
		w.Write([]byte(`[{"id":1,"name":"A"},{"id":2,"name":"B"},{"id":3,"name":"C"}]`))
	}, time.Second)

	start := time.Now()
	products := svc.ProductsWithImages(context.Background())
	elapsed := time.Since(start)

	require.Len(t, products, 3)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID, "product order must survive the fan-out")
		require.Len(t, p.Images, 1)
		assert.Equal(t, p.ID, p.Images[0].ProductID)
	}

	// Three sequential gallery fetches would take at least 240ms.
	assert.Less(t, elapsed, 3*galleryDelay)
}

func TestHeroImagesDegradeToEmptyList(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, time.Second)

	images := svc.HeroImages(context.Background())
	assert.NotNil(t, images)
	assert.Empty(t, images)
}
