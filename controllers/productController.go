package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dopetech/dopetech-api/edge"
	"github.com/dopetech/dopetech-api/models"
	"github.com/dopetech/dopetech-api/supabase"
)

// ProductController serves the admin product surface. Reads list everything
// (including rows hidden on the home page) straight from the store; writes go
// through the edge layer's admin path.
type ProductController struct {
	store *supabase.Client
	edge  *edge.Service
	log   zerolog.Logger
}

func NewProductController(store *supabase.Client, edgeService *edge.Service, logger zerolog.Logger) *ProductController {
	return &ProductController{store: store, edge: edgeService, log: logger}
}

func (pc *ProductController) GetProducts(ctx *gin.Context) {
	var products []models.Product
	err := pc.store.Query(ctx.Request.Context(), "products", &products, nil,
		&supabase.SortOrder{Column: "id", Ascending: true})
	if err != nil {
		pc.log.Error().Err(err).Msg("failed to get products")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to get products", nil)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	edge.CachedJSON(ctx, edge.ClassProducts, products)
}

func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var input edge.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := pc.edge.AddProduct(ctx.Request.Context(), input)
	if err != nil {
		pc.log.Error().Err(err).Msg("failed to create product")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusOK, created)
}

// UpdateProduct is a partial update: the body is decoded as a raw object so
// only the fields the caller actually sent reach the store.
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	idValue, _ := body["id"].(float64)
	id := int(idValue)
	if id == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Product ID is required", nil)
		return
	}
	delete(body, "id")

	updated, err := pc.edge.UpdateProduct(ctx.Request.Context(), id, body)
	if err != nil {
		pc.log.Error().Err(err).Int("id", id).Msg("failed to update product")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	idStr := ctx.Query("id")
	if idStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Product ID is required", nil)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	if err := pc.edge.DeleteProduct(ctx.Request.Context(), id); err != nil {
		pc.log.Error().Err(err).Int("id", id).Msg("failed to delete product")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
