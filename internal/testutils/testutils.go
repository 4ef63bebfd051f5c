package testutils

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/imagestore"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
	"github.com/stretchr/testify/mock"
)

// ReportStore is a testify mock of store.ReportStore.
type ReportStore struct {
	mock.Mock
}

func (m *ReportStore) Create(ctx context.Context, r models.Report) error {
	return m.Called(ctx, r).Error(0)
}

func (m *ReportStore) FindByID(ctx context.Context, kind models.ReportType, id string) (models.Report, error) {
	args := m.Called(ctx, kind, id)
	r, _ := args.Get(0).(models.Report)
	return r, args.Error(1)
}

func (m *ReportStore) List(ctx context.Context, kind models.ReportType) ([]models.Report, error) {
	args := m.Called(ctx, kind)
	list, _ := args.Get(0).([]models.Report)
	return list, args.Error(1)
}

func (m *ReportStore) UpdateStatus(ctx context.Context, kind models.ReportType, id string, status models.ReportStatus) (models.Report, error) {
	args := m.Called(ctx, kind, id, status)
	r, _ := args.Get(0).(models.Report)
	return r, args.Error(1)
}

func (m *ReportStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// AnalystStore is a testify mock of store.AnalystStore.
type AnalystStore struct {
	mock.Mock
}

func (m *AnalystStore) CreateAnalyst(ctx context.Context, a *models.Analyst) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AnalystStore) FindAnalystByEmail(ctx context.Context, email string) (*models.Analyst, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*models.Analyst)
	return a, args.Error(1)
}

func (m *AnalystStore) FindAnalystByID(ctx context.Context, id string) (*models.Analyst, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.Analyst)
	return a, args.Error(1)
}

// ImageStore is a testify mock of imagestore.Store.
type ImageStore struct {
	mock.Mock
}

func (m *ImageStore) Upload(ctx context.Context, file imagestore.Upload, folder string) (risk.Image, error) {
	args := m.Called(ctx, file, folder)
	img, _ := args.Get(0).(risk.Image)
	return img, args.Error(1)
}

// File is one part of a multipart test request.
type File struct {
	Field    string
	Filename string
	Content  []byte
}

// MultipartRequest builds a POST with repeated form values and files.
func MultipartRequest(t *testing.T, target string, fields map[string][]string, files ...File) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, values := range fields {
		for _, v := range values {
			if err := w.WriteField(name, v); err != nil {
				t.Fatalf("write field %s: %v", name, err)
			}
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Filename+`"`)
		h.Set("Content-Type", "image/png")
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part %s: %v", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("write part %s: %v", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
