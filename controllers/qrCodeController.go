package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dopetech/dopetech-api/models"
	"github.com/dopetech/dopetech-api/supabase"
)

type QRCodeController struct {
	store *supabase.Client
	log   zerolog.Logger
}

func NewQRCodeController(store *supabase.Client, logger zerolog.Logger) *QRCodeController {
	return &QRCodeController{store: store, log: logger}
}

func (qc *QRCodeController) GetQRCodes(ctx *gin.Context) {
	var codes []models.QRCode
	err := qc.store.Query(ctx.Request.Context(), "qr_codes", &codes, nil,
		&supabase.SortOrder{Column: "created_at", Ascending: false})
	if err != nil {
		qc.log.Error().Err(err).Msg("failed to get QR codes")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to get QR codes", nil)
		return
	}
	if codes == nil {
		codes = []models.QRCode{}
	}

	ctx.JSON(http.StatusOK, codes)
}

func (qc *QRCodeController) CreateQRCode(ctx *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
		IsActive *bool  `json:"is_active"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	record := map[string]any{
		"name":      body.Name,
		"image_url": body.ImageURL,
		"is_active": isActive,
	}

	var created models.QRCode
	if err := qc.store.Insert(ctx.Request.Context(), "qr_codes", record, &created); err != nil {
		qc.log.Error().Err(err).Msg("failed to create QR code")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create QR code", err)
		return
	}

	ctx.JSON(http.StatusOK, created)
}
