package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Common error response helper. Failure bodies are always JSON with an error
// field and, when available, a details field.
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	ctx.JSON(statusCode, body)
}

// uniqueFileName builds "<prefix>-<unix millis>.<ext>" from the uploaded
// file's extension, lowercased.
func uniqueFileName(prefix, originalName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	return fmt.Sprintf("%s-%d.%s", prefix, time.Now().UnixMilli(), ext)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
