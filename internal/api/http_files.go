package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"cocktails/internal/entity/dto"
	"cocktails/internal/storage"
	"cocktails/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Cover images are served back verbatim, so only common raster formats are
// accepted.
var allowedCoverImageExts = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

const maxCoverImageBytes = 8 << 20

type coverImagePayload struct {
	Image string `json:"image" binding:"required"`
}

// UploadCoverImage handles POST /cocktails/cover-image. It accepts either a
// multipart file field or a JSON body with an inline base64/data-URL image.
// The stored path is returned together with a public URL suitable for the
// cover_image metadata field.
func (h *HTTPHandler) UploadCoverImage(c *gin.Context) {
	if h.storage == nil {
		ServiceUnavailable(c, "storage not available")
		return
	}

	if strings.HasPrefix(c.ContentType(), "application/json") {
		h.uploadCoverImageJSON(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, ErrCodeInvalidUpload, "missing file field")
		return
	}
	if file.Size > maxCoverImageBytes {
		BadRequest(c, ErrCodeInvalidUpload, "file too large")
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if _, ok := allowedCoverImageExts[ext]; !ok {
		BadRequest(c, ErrCodeInvalidUpload, "unsupported image type")
		return
	}

	opened, err := file.Open()
	if err != nil {
		logrus.WithError(err).Error("failed to open uploaded file")
		InternalError(c, "failed to read upload")
		return
	}
	defer opened.Close()

	data, err := io.ReadAll(io.LimitReader(opened, maxCoverImageBytes+1))
	if err != nil {
		logrus.WithError(err).Error("failed to read uploaded file")
		InternalError(c, "failed to read upload")
		return
	}
	if len(data) > maxCoverImageBytes {
		BadRequest(c, ErrCodeInvalidUpload, "file too large")
		return
	}

	baseName := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	storedPath, err := h.storage.Save(ctx, data, storage.SaveOptions{
		Category:  "covers",
		Extension: ext,
		BaseName:  baseName,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to store cover image")
		InternalError(c, "failed to store cover image")
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		Path: storedPath,
		URL:  h.publicURL(storedPath),
	})
}

func (h *HTTPHandler) uploadCoverImageJSON(c *gin.Context) {
	var req coverImagePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	data, ext, err := utils.DecodeMediaPayload(req.Image)
	if err != nil {
		BadRequest(c, ErrCodeInvalidUpload, "invalid image payload")
		return
	}
	if len(data) > maxCoverImageBytes {
		BadRequest(c, ErrCodeInvalidUpload, "file too large")
		return
	}
	if _, ok := allowedCoverImageExts[ext]; !ok {
		BadRequest(c, ErrCodeInvalidUpload, "unsupported image type")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	storedPath, err := h.storage.Save(ctx, data, storage.SaveOptions{
		Category:  "covers",
		Extension: ext,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to store cover image")
		InternalError(c, "failed to store cover image")
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		Path: storedPath,
		URL:  h.publicURL(storedPath),
	})
}

// publicURL maps a stored path to the URL clients can fetch it from. Paths
// that are already absolute URLs pass through unchanged.
func (h *HTTPHandler) publicURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	base := h.storagePublicBase
	if base == "" {
		base = "/files"
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), strings.TrimLeft(trimmed, "/"))
}
