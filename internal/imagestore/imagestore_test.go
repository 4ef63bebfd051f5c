package imagestore

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	args := m.Called(ctx, file, params)
	res, _ := args.Get(0).(*uploader.UploadResult)
	return res, args.Error(1)
}

func TestCloudinary_Upload(t *testing.T) {
	up := new(mockUploader)
	c := &Cloudinary{api: up, cloudName: "scamlens"}
	body := strings.NewReader("png")

	up.On("Upload", mock.Anything, body, uploader.UploadParams{Folder: FolderRomance, ResourceType: "auto"}).
		Return(&uploader.UploadResult{SecureURL: "https://res.cloudinary.com/scamlens/image/upload/v1/romance_scam_photos/abc.png", PublicID: "romance_scam_photos/abc"}, nil)

	img, err := c.Upload(context.Background(), Upload{Filename: "abc.png", Body: body}, FolderRomance)
	require.NoError(t, err)
	assert.Equal(t, "romance_scam_photos/abc", img.PublicID)
	assert.Contains(t, img.URL, "https://res.cloudinary.com/")
	up.AssertExpectations(t)
}

func TestCloudinary_UploadFallsBackToConstructedURL(t *testing.T) {
	up := new(mockUploader)
	c := &Cloudinary{api: up, cloudName: "scamlens"}

	up.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(&uploader.UploadResult{PublicID: "platform_verification_screenshots/x"}, nil)

	img, err := c.Upload(context.Background(), Upload{Body: strings.NewReader("x")}, FolderPlatform)
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/scamlens/image/upload/platform_verification_screenshots/x", img.URL)
}

func TestCloudinary_UploadErrors(t *testing.T) {
	up := new(mockUploader)
	c := &Cloudinary{api: up, cloudName: "scamlens"}

	up.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout")).Once()
	_, err := c.Upload(context.Background(), Upload{Body: strings.NewReader("x")}, FolderVendor)
	assert.ErrorContains(t, err, "timeout")

	up.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(&uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}, nil).Once()
	_, err = c.Upload(context.Background(), Upload{Body: strings.NewReader("x")}, FolderVendor)
	assert.ErrorContains(t, err, "Invalid image file")

	up.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(&uploader.UploadResult{}, nil).Once()
	_, err = c.Upload(context.Background(), Upload{Body: strings.NewReader("x")}, FolderVendor)
	assert.Error(t, err)
}

func TestNewCloudinary_RequiresCredentials(t *testing.T) {
	_, err := NewCloudinary(CloudinaryConfig{CloudName: "scamlens"})
	assert.Error(t, err)
}

type mockPutter struct {
	mock.Mock
}

func (m *mockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func TestS3_Upload(t *testing.T) {
	put := new(mockPutter)
	s := newS3(put, S3Config{Bucket: "evidence", Region: "eu-west-1"})
	s.newKey = func(folder, filename string) string { return folder + "/fixed.png" }

	put.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return *in.Bucket == "evidence" &&
			*in.Key == "social_vendor_screenshots/fixed.png" &&
			*in.ContentType == "image/png" &&
			*in.ContentLength == 3
	})).Return(&s3.PutObjectOutput{}, nil)

	img, err := s.Upload(context.Background(), Upload{Filename: "shot.PNG", ContentType: "image/png", Body: strings.NewReader("png"), Size: 3}, FolderVendor)
	require.NoError(t, err)
	assert.Equal(t, "https://evidence.s3.eu-west-1.amazonaws.com/social_vendor_screenshots/fixed.png", img.URL)
	assert.Equal(t, "social_vendor_screenshots/fixed.png", img.PublicID)
	put.AssertExpectations(t)
}

func TestS3_UploadError(t *testing.T) {
	put := new(mockPutter)
	s := newS3(put, S3Config{Bucket: "evidence", Endpoint: "http://minio:9000/"})

	put.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := s.Upload(context.Background(), Upload{Filename: "a.jpg", Body: strings.NewReader("x")}, FolderRomance)
	assert.ErrorContains(t, err, "access denied")
	assert.Equal(t, "http://minio:9000/evidence", s.baseURL)
}

func TestObjectKey(t *testing.T) {
	key := objectKey(FolderPlatform, "Screen Shot.JPEG")
	assert.Regexp(t, `^platform_verification_screenshots/[0-9a-f-]{36}\.jpeg$`, key)
	assert.NotEqual(t, key, objectKey(FolderPlatform, "Screen Shot.JPEG"))
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Upload(context.Background(), Upload{}, FolderRomance)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
