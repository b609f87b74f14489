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

const heroImagesBucket = "hero-images"

type HeroImageController struct {
	read  *supabase.Client
	admin *supabase.Client
	edge  *edge.Service
	log   zerolog.Logger
}

func NewHeroImageController(read, admin *supabase.Client, edgeService *edge.Service, logger zerolog.Logger) *HeroImageController {
	return &HeroImageController{read: read, admin: admin, edge: edgeService, log: logger}
}

func (hc *HeroImageController) GetHeroImages(ctx *gin.Context) {
	var images []models.HeroImage
	err := hc.read.Query(ctx.Request.Context(), "hero_images", &images,
		[]supabase.Filter{supabase.Eq("is_active", true)},
		&supabase.SortOrder{Column: "display_order", Ascending: true})
	if err != nil {
		hc.log.Error().Err(err).Msg("failed to fetch hero images")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch hero images", nil)
		return
	}
	if images == nil {
		images = []models.HeroImage{}
	}

	edge.CachedJSON(ctx, edge.ClassHeroImages, images)
}

func (hc *HeroImageController) UploadHeroImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file provided", nil)
		return
	}

	displayOrder, _ := strconv.Atoi(ctx.PostForm("display_order"))

	data, err := readUpload(file)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	fileName := uniqueFileName("hero", file.Filename)
	if _, err := hc.admin.UploadBlob(ctx.Request.Context(), heroImagesBucket, fileName, data, file.Header.Get("Content-Type")); err != nil {
		hc.log.Error().Err(err).Str("file", fileName).Msg("failed to upload hero image")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload file", nil)
		return
	}

	created, err := hc.edge.InsertHeroImage(ctx.Request.Context(), edge.HeroImageInput{
		FileName:     fileName,
		URL:          hc.admin.PublicURL(heroImagesBucket, fileName),
		Title:        ctx.PostForm("title"),
		Subtitle:     ctx.PostForm("subtitle"),
		Description:  ctx.PostForm("description"),
		DisplayOrder: displayOrder,
		ShowContent:  ctx.PostForm("show_content") == "true",
	})
	if err != nil {
		hc.log.Error().Err(err).Str("file", fileName).Msg("failed to save hero image metadata")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save metadata", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"image":   created,
		"message": "Hero image uploaded successfully",
	})
}
