package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dopetech/dopetech-api/edge"
	"github.com/dopetech/dopetech-api/supabase"
)

const (
	defaultDopePicksCount   = 6
	defaultWeeklyPicksCount = 4
)

// EdgeProductController serves the cached, degradation-safe read surface.
// Every list read here resolves through the edge layer, so a failing store
// yields fallback data (products) or an empty list (everything else), never
// a 5xx.
type EdgeProductController struct {
	edge *edge.Service
	log  zerolog.Logger
}

func NewEdgeProductController(edgeService *edge.Service, logger zerolog.Logger) *EdgeProductController {
	return &EdgeProductController{edge: edgeService, log: logger}
}

func (ec *EdgeProductController) GetProducts(ctx *gin.Context) {
	edge.CachedJSON(ctx, edge.ClassProducts, ec.edge.Products(ctx.Request.Context()))
}

func (ec *EdgeProductController) GetProduct(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := ec.edge.ProductByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
			return
		}
		ec.log.Error().Err(err).Int("id", id).Msg("failed to fetch product")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch product", nil)
		return
	}

	edge.CachedJSON(ctx, edge.ClassProducts, product)
}

func (ec *EdgeProductController) GetProductsByCategory(ctx *gin.Context) {
	category := ctx.Param("category")
	edge.CachedJSON(ctx, edge.ClassProducts, ec.edge.ProductsByCategory(ctx.Request.Context(), category))
}

func (ec *EdgeProductController) GetDopePicks(ctx *gin.Context) {
	count := countQuery(ctx, defaultDopePicksCount)
	edge.CachedJSON(ctx, edge.ClassProducts, ec.edge.DopePicks(ctx.Request.Context(), count))
}

func (ec *EdgeProductController) GetWeeklyPicks(ctx *gin.Context) {
	count := countQuery(ctx, defaultWeeklyPicksCount)
	edge.CachedJSON(ctx, edge.ClassProducts, ec.edge.WeeklyPicks(ctx.Request.Context(), count))
}

func (ec *EdgeProductController) GetProductsWithImages(ctx *gin.Context) {
	edge.CachedJSON(ctx, edge.ClassProducts, ec.edge.ProductsWithImages(ctx.Request.Context()))
}

func (ec *EdgeProductController) GetProductImages(ctx *gin.Context) {
	productIDStr := ctx.Query("productId")
	if productIDStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Product ID is required", nil)
		return
	}
	productID, err := strconv.Atoi(productIDStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	edge.CachedJSON(ctx, edge.ClassProductImages, ec.edge.ProductImages(ctx.Request.Context(), productID))
}

func (ec *EdgeProductController) GetHeroImages(ctx *gin.Context) {
	edge.CachedJSON(ctx, edge.ClassHeroImages, ec.edge.HeroImages(ctx.Request.Context()))
}

func countQuery(ctx *gin.Context, fallback int) int {
	count, err := strconv.Atoi(ctx.DefaultQuery("count", strconv.Itoa(fallback)))
	if err != nil || count < 1 {
		return fallback
	}
	return count
}
