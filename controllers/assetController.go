package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dopetech/dopetech-api/supabase"
)

const (
	assetsBucket    = "assets"
	assetsListLimit = 100
)

// AssetController serves the generic asset bucket. Asset names keep the
// original filename behind a millisecond prefix.
type AssetController struct {
	store *supabase.Client
	log   zerolog.Logger
}

func NewAssetController(store *supabase.Client, logger zerolog.Logger) *AssetController {
	return &AssetController{store: store, log: logger}
}

func (ac *AssetController) GetAssets(ctx *gin.Context) {
	files, err := ac.store.ListBlobs(ctx.Request.Context(), assetsBucket, assetsListLimit)
	if err != nil {
		ac.log.Error().Err(err).Msg("failed to list assets")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to get assets", nil)
		return
	}
	if files == nil {
		files = []supabase.Object{}
	}

	ctx.JSON(http.StatusOK, files)
}

func (ac *AssetController) UploadAsset(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file provided", nil)
		return
	}

	data, err := readUpload(file)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), file.Filename)
	path, err := ac.store.UploadBlob(ctx.Request.Context(), assetsBucket, fileName, data, file.Header.Get("Content-Type"))
	if err != nil {
		ac.log.Error().Err(err).Str("file", fileName).Msg("failed to upload asset")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload asset", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"fileName": fileName,
		"path":     path,
	})
}
