package handlers

import (
	"bytes"

	"github.com/gin-gonic/gin"

	"vahanbazar/internal/utils"
	"vahanbazar/pkg/logger"
	"vahanbazar/pkg/storage"
)

const (
	thumbnailMaxWidth  = 320
	thumbnailMaxHeight = 240
)

// UploadHandler serves standalone media uploads, for logos and other assets
// not tied to a listing compose.
type UploadHandler struct {
	storage storage.Provider
	logger  *logger.Logger
}

func NewUploadHandler(provider storage.Provider, log *logger.Logger) *UploadHandler {
	return &UploadHandler{
		storage: provider,
		logger:  log,
	}
}

// UploadImage stores one image blob plus a generated thumbnail and returns
// both URLs.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "multipart field 'image' is required")
		return
	}
	if err := utils.ValidateImageUpload(header); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.BadRequestResponse(c, "failed to read uploaded file")
		return
	}
	defer file.Close()

	key := utils.GenerateObjectKey("uploads", header.Filename)
	contentType := utils.GetContentType(header.Filename)

	resp, err := h.storage.Upload(c.Request.Context(), &storage.UploadRequest{
		Key:         key,
		Reader:      file,
		ContentType: contentType,
		Size:        header.Size,
	})
	if err != nil {
		h.logger.WithError(err).Error("image upload failed")
		utils.ErrorResponse(c, 500, "UPLOAD_FAILED", utils.ErrFileUploadFailed)
		return
	}

	result := gin.H{
		"key": resp.Key,
		"url": resp.URL,
	}

	// Thumbnail generation is best effort; the original upload already
	// succeeded.
	if thumb, err := utils.MakeThumbnail(file, header.Filename, thumbnailMaxWidth, thumbnailMaxHeight); err == nil {
		thumbKey := utils.GenerateObjectKey("uploads/thumbs", header.Filename)
		thumbResp, err := h.storage.Upload(c.Request.Context(), &storage.UploadRequest{
			Key:         thumbKey,
			Reader:      bytes.NewReader(thumb),
			ContentType: contentType,
			Size:        int64(len(thumb)),
		})
		if err == nil {
			result["thumbnail_url"] = thumbResp.URL
		}
	}

	utils.CreatedResponse(c, "Image uploaded successfully", result)
}
