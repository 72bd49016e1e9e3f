package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func GetImageDimensions(r io.ReadSeeker) (*ImageDimensions, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	config, _, err := image.DecodeConfig(r)
	if err != nil {
		return nil, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return &ImageDimensions{
		Width:  config.Width,
		Height: config.Height,
	}, nil
}

// MakeThumbnail decodes the image and scales it down to fit within
// maxWidth x maxHeight, re-encoding in the source format.
func MakeThumbnail(r io.ReadSeeker, filename string, maxWidth, maxHeight uint) ([]byte, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, err := decodeImage(r, filename)
	if err != nil {
		return nil, err
	}

	thumb := resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3)

	var buf bytes.Buffer
	switch GetFileExtension(filename) {
	case ".png":
		err = png.Encode(&buf, thumb)
	default:
		err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decodeImage(r io.Reader, filename string) (image.Image, error) {
	switch GetFileExtension(filename) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".png":
		return png.Decode(r)
	default:
		img, _, err := image.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("unsupported image format: %w", err)
		}
		return img, nil
	}
}
