package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")

	for _, allowedType := range allowedTypes {
		if ext == allowedType {
			return true
		}
	}

	return false
}

func IsImageFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedImageTypes)
}

// GenerateObjectKey returns a collision-free storage key under the given prefix,
// keeping the original extension.
func GenerateObjectKey(prefix, originalFilename string) string {
	ext := GetFileExtension(originalFilename)
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
}

func GetContentType(filename string) string {
	switch GetFileExtension(filename) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

func ValidateImageUpload(header *multipart.FileHeader) error {
	if !IsImageFile(header.Filename) {
		return fmt.Errorf("unsupported image type: %s", GetFileExtension(header.Filename))
	}
	if header.Size > MaxImageSize {
		return fmt.Errorf("image exceeds maximum size of %d bytes", MaxImageSize)
	}
	return nil
}
