package services

import (
	"fmt"
	"mime/multipart"

	"github.com/youssefmarket/storefront-api/utils"
)

// ImageService validates and stores catalog images for products and
// categories.
type ImageService interface {
	// UploadImage validates and uploads an image file, returns the storage key
	UploadImage(fileHeader *multipart.FileHeader) (string, error)

	// GetImageURL generates a URL for accessing an uploaded image
	GetImageURL(imageKey string) (string, error)

	// DeleteImage removes an image from storage
	DeleteImage(imageKey string) error
}

// StorageImageService implements ImageService over an ObjectStorage backend
type StorageImageService struct {
	storage ObjectStorage
}

// NewImageService creates an image service over the given storage backend
func NewImageService(storage ObjectStorage) *StorageImageService {
	return &StorageImageService{storage: storage}
}

// UploadImage validates and uploads an image file
func (s *StorageImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	key, err := s.storage.UploadFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return key, nil
}

// GetImageURL generates a presigned URL for accessing an image
func (s *StorageImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	url, err := s.storage.GetPresignedURL(imageKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}
	return url, nil
}

// DeleteImage deletes an image from storage
func (s *StorageImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if err := s.storage.DeleteFile(imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
