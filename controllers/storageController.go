package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dopetech/dopetech-api/edge"
	"github.com/dopetech/dopetech-api/supabase"
)

const storageListLimit = 100

// StorageController serves one storage bucket: public-URL lookup and listing
// on the read credential, upload and delete on the service-role credential.
// Two instances are registered, for product-images and qr-codes.
type StorageController struct {
	read   *supabase.Client
	admin  *supabase.Client
	bucket string
	prefix string
	log    zerolog.Logger
}

func NewStorageController(read, admin *supabase.Client, bucket, prefix string, logger zerolog.Logger) *StorageController {
	return &StorageController{
		read:   read,
		admin:  admin,
		bucket: bucket,
		prefix: prefix,
		log:    logger.With().Str("bucket", bucket).Logger(),
	}
}

// GetFiles returns the public URL for fileName when given, otherwise the
// bucket listing with image cache headers.
func (sc *StorageController) GetFiles(ctx *gin.Context) {
	if fileName := ctx.Query("fileName"); fileName != "" {
		ctx.JSON(http.StatusOK, gin.H{"url": sc.read.PublicURL(sc.bucket, fileName)})
		return
	}

	files, err := sc.read.ListBlobs(ctx.Request.Context(), sc.bucket, storageListLimit)
	if err != nil {
		sc.log.Error().Err(err).Msg("failed to list files")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to list files", nil)
		return
	}
	if files == nil {
		files = []supabase.Object{}
	}

	edge.CachedJSON(ctx, edge.ClassProductImages, files)
}

func (sc *StorageController) UploadFile(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "File is required", nil)
		return
	}

	data, err := readUpload(file)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	fileName := uniqueFileName(sc.prefix, file.Filename)
	path, err := sc.admin.UploadBlob(ctx.Request.Context(), sc.bucket, fileName, data, file.Header.Get("Content-Type"))
	if err != nil {
		sc.log.Error().Err(err).Str("file", fileName).Msg("failed to upload file")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload file", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"fileName": path,
		"url":      sc.admin.PublicURL(sc.bucket, fileName),
	})
}

func (sc *StorageController) DeleteFile(ctx *gin.Context) {
	fileName := ctx.Query("fileName")
	if fileName == "" {
		respondWithError(ctx, http.StatusBadRequest, "File name is required", nil)
		return
	}

	if err := sc.admin.RemoveBlob(ctx.Request.Context(), sc.bucket, fileName); err != nil {
		sc.log.Error().Err(err).Str("file", fileName).Msg("failed to delete file")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete file", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
