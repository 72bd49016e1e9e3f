package services

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/internal/utils"
	"vahanbazar/pkg/logger"
	"vahanbazar/pkg/storage"
)

// ImageUpload is one incoming image file, decoupled from the HTTP layer.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type ImageService struct {
	images  interfaces.ImageRepository
	storage storage.Provider
	logger  *logger.Logger
}

func NewImageService(images interfaces.ImageRepository, provider storage.Provider, log *logger.Logger) *ImageService {
	return &ImageService{
		images:  images,
		storage: provider,
		logger:  log,
	}
}

// ValidateCount enforces the image set bounds for a listing.
func (s *ImageService) ValidateCount(n int) error {
	if n < utils.MinListingImages {
		return NewValidationError(CodeInsufficientImages, "images",
			fmt.Sprintf("a listing requires at least %d images", utils.MinListingImages))
	}
	if n > utils.MaxListingImages {
		return NewValidationError(CodeTooManyImages, "images",
			fmt.Sprintf("a listing allows at most %d images", utils.MaxListingImages))
	}
	return nil
}

// Upload pushes every file to blob storage and returns image documents in
// upload order, not yet persisted. Blobs already uploaded are removed when a
// later upload fails.
func (s *ImageService) Upload(ctx context.Context, listingID primitive.ObjectID, uploads []ImageUpload) ([]*models.VehicleImage, error) {
	images := make([]*models.VehicleImage, 0, len(uploads))

	for i, upload := range uploads {
		key := utils.GenerateObjectKey(fmt.Sprintf("listings/%s", listingID.Hex()), upload.Filename)

		resp, err := s.storage.Upload(ctx, &storage.UploadRequest{
			Key:         key,
			Reader:      upload.Reader,
			ContentType: upload.ContentType,
			Size:        upload.Size,
		})
		if err != nil {
			s.Cleanup(ctx, images)
			return nil, fmt.Errorf("failed to upload image %q: %w", upload.Filename, err)
		}

		images = append(images, &models.VehicleImage{
			ListingID: listingID,
			Key:       resp.Key,
			URL:       resp.URL,
			Order:     i,
		})
	}

	return images, nil
}

// Attach persists image documents for a freshly composed listing.
func (s *ImageService) Attach(ctx context.Context, images []*models.VehicleImage) error {
	return s.images.InsertMany(ctx, images)
}

// Replace swaps the full image set of a listing. The old documents go first,
// then the new set lands with order following slice position. Callers run this
// inside the composition transaction.
func (s *ImageService) Replace(ctx context.Context, listingID primitive.ObjectID, images []*models.VehicleImage) error {
	if err := s.images.DeleteByListing(ctx, listingID); err != nil {
		return err
	}
	return s.images.InsertMany(ctx, images)
}

func (s *ImageService) ListByListing(ctx context.Context, listingID primitive.ObjectID) ([]*models.VehicleImage, error) {
	return s.images.ListByListing(ctx, listingID)
}

// DeleteAll removes a listing's image documents and their blobs. Blob deletion
// is best effort; an orphaned blob is preferable to a failed listing delete.
func (s *ImageService) DeleteAll(ctx context.Context, listingID primitive.ObjectID) error {
	images, err := s.images.ListByListing(ctx, listingID)
	if err != nil {
		return err
	}
	if err := s.images.DeleteByListing(ctx, listingID); err != nil {
		return err
	}
	s.Cleanup(ctx, images)
	return nil
}

// Cleanup deletes blobs for image documents that will never be persisted.
func (s *ImageService) Cleanup(ctx context.Context, images []*models.VehicleImage) {
	for _, img := range images {
		if err := s.storage.Delete(ctx, img.Key); err != nil {
			s.logger.WithError(err).WithField("key", img.Key).Warn("failed to delete orphaned image blob")
		}
	}
}
