package imagestore

import (
	"context"
	"errors"
	"io"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
)

// Folders images are grouped under, one per report type.
const (
	FolderRomance  = "romance_scam_photos"
	FolderPlatform = "platform_verification_screenshots"
	FolderVendor   = "social_vendor_screenshots"
)

var ErrNotConfigured = errors.New("image storage is not configured")

// Upload is one file taken from a multipart submission.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
	Size        int64
}

// Store hosts evidence images. Failed uploads are not retried.
type Store interface {
	Upload(ctx context.Context, file Upload, folder string) (risk.Image, error)
}

// Disabled rejects every upload.
type Disabled struct{}

func (Disabled) Upload(context.Context, Upload, string) (risk.Image, error) {
	return risk.Image{}, ErrNotConfigured
}
