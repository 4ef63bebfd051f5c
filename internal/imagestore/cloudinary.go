package imagestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type cloudinaryUploader interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// Cloudinary uploads to a Cloudinary account.
type Cloudinary struct {
	api       cloudinaryUploader
	cloudName string
}

func NewCloudinary(cfg CloudinaryConfig) (*Cloudinary, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials are incomplete")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &Cloudinary{api: &cld.Upload, cloudName: cfg.CloudName}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, file Upload, folder string) (risk.Image, error) {
	res, err := c.api.Upload(ctx, file.Body, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return risk.Image{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	// The API reports some failures in the body with a 200.
	if res.Error.Message != "" {
		return risk.Image{}, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	url := res.SecureURL
	if url == "" {
		if res.PublicID == "" {
			return risk.Image{}, errors.New("cloudinary upload: empty response")
		}
		url = fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s", c.cloudName, res.PublicID)
		slog.Warn("cloudinary returned no secure url", "public_id", res.PublicID)
	}
	return risk.Image{URL: url, PublicID: res.PublicID}, nil
}
