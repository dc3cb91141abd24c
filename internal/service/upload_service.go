package service

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"

	"github.com/primehood/supplies-api/internal/config"
)

// MaxUploadSize caps product image uploads at 5 MB.
const MaxUploadSize = 5 << 20

// allowedImageTypes are the content types accepted for product images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// AllowedImageType reports whether a content type may be uploaded.
func AllowedImageType(contentType string) bool {
	return allowedImageTypes[contentType]
}

// UploadService pushes product images to the Cloudinary CDN.
type UploadService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewUploadService constructs an UploadService from config.
func NewUploadService(cfg *config.CloudinaryConfig) (*UploadService, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials incomplete")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &UploadService{cld: cld, folder: cfg.Folder}, nil
}

// UploadResult describes the stored image.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// UploadImage stores one image, bounded to 800x800 with automatic quality.
func (s *UploadService) UploadImage(ctx context.Context, file io.Reader) (*UploadResult, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder,
		Transformation: "c_limit,w_800,h_800,q_auto",
	})
	if err != nil {
		log.Error().Err(err).Msg("cloudinary upload failed")
		return nil, err
	}

	log.Info().Str("public_id", resp.PublicID).Msg("image uploaded")
	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Width:    resp.Width,
		Height:   resp.Height,
	}, nil
}
