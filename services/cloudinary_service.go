package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService is the object-storage collaborator: upload a file,
// get back a URL; delete by URL.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var cloudinaryService *CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = &CloudinaryService{cld: cld}
	return nil
}

func GetCloudinaryService() *CloudinaryService {
	return cloudinaryService
}

// UploadImage uploads a single image and returns the secure URL.
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename string, folder string) (string, error) {
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// DeleteImageByURL deletes an image given its delivery URL. Returns false
// (without error) when the URL is not a Cloudinary delivery URL we can
// derive a public ID from.
func (s *CloudinaryService) DeleteImageByURL(ctx context.Context, url string) (bool, error) {
	publicID := publicIDFromURL(url)
	if publicID == "" {
		return false, nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return false, err
	}
	return true, nil
}

// publicIDFromURL extracts "<folder>/<name>" from
// .../image/upload/v123/<folder>/<name>.<ext>
func publicIDFromURL(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx == -1 {
		return ""
	}
	rest := url[idx+len("/upload/"):]

	// drop the version segment if present
	if strings.HasPrefix(rest, "v") {
		if slash := strings.Index(rest, "/"); slash != -1 {
			rest = rest[slash+1:]
		}
	}

	if dot := strings.LastIndex(rest, "."); dot != -1 {
		rest = rest[:dot]
	}
	return rest
}
