package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var activeCloudinary *CloudinaryService

// InitCloudinary installs the shared instance used by the upload
// handlers. It may stay nil when credentials are not configured; the
// handlers report uploads as unavailable in that case.
func InitCloudinary(s *CloudinaryService) {
	activeCloudinary = s
}

// GetCloudinary returns the shared instance, or nil when uploads are not
// configured.
func GetCloudinary() *CloudinaryService {
	return activeCloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadMedia uploads a single file to Cloudinary and returns the secure
// delivery URL. resourceType is "image" or "video"; icons upload as
// images.
func (s *CloudinaryService) UploadMedia(ctx context.Context, file multipart.File, filename, folder, resourceType string) (string, error) {
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   resourceType,
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}

	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// DeleteFolder deletes every asset under folderPath, then the (now empty)
// folder itself. Folder delete errors are ignored; Cloudinary usually
// removes empty folders on its own.
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folderPath string) error {
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folderPath},
	})
	if err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folderPath, err)
	}

	s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folderPath})
	return nil
}
