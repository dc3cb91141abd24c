package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/primehood/supplies-api/internal/service"
	"github.com/primehood/supplies-api/internal/utils"
)

// UploadHandler handles product image uploads.
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload accepts a multipart "image" file and stores it on the CDN.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.uploadService == nil {
		utils.Error(c, 503, "UPLOAD_DISABLED", "Image upload is not configured")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "No image file provided")
		return
	}
	if fileHeader.Size > service.MaxUploadSize {
		utils.Error(c, 400, "FILE_TOO_LARGE", "Image must be 5MB or smaller")
		return
	}
	if !service.AllowedImageType(fileHeader.Header.Get("Content-Type")) {
		utils.Error(c, 400, "INVALID_FILE_TYPE", "Only JPEG, PNG, WebP, and GIF images are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read image")
		return
	}
	defer file.Close()

	result, err := h.uploadService.UploadImage(c.Request.Context(), file)
	if err != nil {
		utils.Error(c, 500, "UPLOAD_FAILED", "Failed to upload image")
		return
	}
	utils.Success(c, 200, "Image uploaded successfully", result)
}
