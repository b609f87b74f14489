package edge

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertHeroImageRetriesOnceWithoutShowContent(t *testing.T) {
	var bodies []map[string]any
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/hero_images", r.URL.Path)

		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		bodies = append(bodies, body)

		if _, hasShowContent := body["show_content"]; hasShowContent {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Could not find the 'show_content' column of 'hero_images' in the schema cache","code":"PGRST204"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":9,"image_file_name":"hero-1.png","is_active":true}]`))
	}, time.Second)

	input := HeroImageInput{
		FileName:    "hero-1.png",
		URL:         "https://cdn.example/hero-1.png",
		Title:       "Summer drop",
		ShowContent: true,
	}

	created, err := svc.InsertHeroImage(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)

	// One rejected insert plus one clean retry, never a double insert.
	require.Len(t, bodies, 2)
	assert.Contains(t, bodies[0], "show_content")
	assert.NotContains(t, bodies[1], "show_content")

	// The capability sticks: the next insert skips the column outright.
	_, err = svc.InsertHeroImage(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, bodies, 3)
	assert.NotContains(t, bodies[2], "show_content")
}

func TestInsertHeroImageSurfacesUnrelatedErrors(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"null value in column \"image_url\" violates not-null constraint"}`))
	}, time.Second)

	_, err := svc.InsertHeroImage(context.Background(), HeroImageInput{FileName: "hero-2.png", ShowContent: true})
	require.Error(t, err)
	assert.False(t, svc.heroShowContentAbsent.Load())
}

func TestDeleteProductRemovesImagesFirst(t *testing.T) {
	var deletes []string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deletes = append(deletes, r.URL.Path+"?"+r.URL.RawQuery)

		if strings.Contains(r.URL.Path, "product_images") {
			// Image delete failing must not abort the product delete.
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}, time.Second)

	err := svc.DeleteProduct(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, deletes, 2)
	assert.Contains(t, deletes[0], "/rest/v1/product_images")
	assert.Contains(t, deletes[0], "product_id=eq.7")
	assert.Contains(t, deletes[1], "/rest/v1/products")
	assert.Contains(t, deletes[1], "id=eq.7")
}

func TestUpdateProductSendsOnlyProvidedFields(t *testing.T) {
	var body map[string]any
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "eq.7", r.URL.Query().Get("id"))

		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`[{"id":7,"name":"Renamed","price":129.99,"in_stock":true}]`))
	}, time.Second)

	updated, err := svc.UpdateProduct(context.Background(), 7, map[string]any{"name": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	// Omitted columns must stay untouched in the store, so the patch
	// carries nothing beyond what the caller sent.
	assert.Equal(t, map[string]any{"name": "Renamed"}, body)
}

func TestUpdateProductDropsUnknownColumns(t *testing.T) {
	var body map[string]any
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`[{"id":7,"price":99.5}]`))
	}, time.Second)

	_, err := svc.UpdateProduct(context.Background(), 7, map[string]any{
		"price":      99.5,
		"created_at": "2026-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"price": 99.5}, body)
}

func TestUpdateProductWithNoWritableFieldsReadsCurrentRow(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method, "an empty patch must not issue a write")
		w.Write([]byte(`[{"id":7,"name":"Untouched"}]`))
	}, time.Second)

	current, err := svc.UpdateProduct(context.Background(), 7, map[string]any{"created_at": "x"})
	require.NoError(t, err)
	assert.Equal(t, "Untouched", current.Name)
}

func TestAddProductAppliesDefaults(t *testing.T) {
	var body map[string]any
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":31,"name":"Mousepad XL","price":19.99,"original_price":19.99}]`))
	}, time.Second)

	created, err := svc.AddProduct(context.Background(), ProductInput{
		Name:    "Mousepad XL",
		Price:   19.99,
		InStock: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 31, created.ID)

	assert.Equal(t, 19.99, body["original_price"], "original_price defaults to price")
	assert.Equal(t, float64(0), body["rating"])
	assert.Equal(t, float64(0), body["reviews"])
	assert.Equal(t, []any{}, body["features"])
	assert.Equal(t, false, body["hidden_on_home"])
	assert.Nil(t, body["color"])
}
