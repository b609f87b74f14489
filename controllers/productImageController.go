package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dopetech/dopetech-api/edge"
	"github.com/dopetech/dopetech-api/models"
	"github.com/dopetech/dopetech-api/supabase"
)

const productImagesBucket = "product-images"

type ProductImageController struct {
	read  *supabase.Client
	admin *supabase.Client
	log   zerolog.Logger
}

func NewProductImageController(read, admin *supabase.Client, logger zerolog.Logger) *ProductImageController {
	return &ProductImageController{read: read, admin: admin, log: logger}
}

// GetProductImages lists a product's images ordered by display_order
// ascending. The carousel depends on that ordering.
func (ic *ProductImageController) GetProductImages(ctx *gin.Context) {
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

	var images []models.ProductImage
	err = ic.read.Query(ctx.Request.Context(), "product_images", &images,
		[]supabase.Filter{supabase.Eq("product_id", productID)},
		&supabase.SortOrder{Column: "display_order", Ascending: true})
	if err != nil {
		ic.log.Error().Err(err).Int("product_id", productID).Msg("failed to fetch product images")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch product images", nil)
		return
	}
	if images == nil {
		images = []models.ProductImage{}
	}

	edge.CachedJSON(ctx, edge.ClassProductImages, images)
}

func (ic *ProductImageController) UploadProductImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	productID := ctx.PostForm("productId")
	if err != nil || productID == "" {
		respondWithError(ctx, http.StatusBadRequest, "File and product ID are required", nil)
		return
	}
	productIDNum, err := strconv.Atoi(productID)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}
	isPrimary := ctx.PostForm("isPrimary") == "true"

	data, err := readUpload(file)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	fileName := fmt.Sprintf("product-%d-%d.%s", productIDNum, time.Now().UnixMilli(), ext)

	if _, err := ic.admin.UploadBlob(ctx.Request.Context(), productImagesBucket, fileName, data, file.Header.Get("Content-Type")); err != nil {
		ic.log.Error().Err(err).Str("file", fileName).Msg("failed to upload product image")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload file", nil)
		return
	}

	record := map[string]any{
		"product_id":    productIDNum,
		"image_url":     ic.admin.PublicURL(productImagesBucket, fileName),
		"file_name":     fileName,
		"is_primary":    isPrimary,
		"display_order": 0,
	}

	var created models.ProductImage
	if err := ic.admin.Insert(ctx.Request.Context(), "product_images", record, &created); err != nil {
		ic.log.Error().Err(err).Str("file", fileName).Msg("failed to save product image metadata")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save metadata", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"image":   created,
		"message": "Product image uploaded successfully",
	})
}
