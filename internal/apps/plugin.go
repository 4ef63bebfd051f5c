package apps

import (
	"mime/multipart"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/imagestore"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

// Deps are the collaborators shared by every report plugin.
type Deps struct {
	Reports store.ReportStore
	Images  imagestore.Store
}

// Plugin defines the interface every report type must implement.
type Plugin interface {
	// ID returns the report type handled by the plugin.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the public submission routes on the given group.
	// The group is already prefixed with /api.
	RegisterRoutes(router fiber.Router, deps Deps)
}

// OpenUpload opens a multipart file for handing to an image store.
// The caller must close the returned file.
func OpenUpload(fh *multipart.FileHeader) (imagestore.Upload, multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return imagestore.Upload{}, nil, err
	}
	return imagestore.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
		Size:        fh.Size,
	}, f, nil
}
