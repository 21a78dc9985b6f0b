// Package images recibe imágenes subidas y las pasa a un host de imágenes.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"

	"pet-adoption-api/internal/domain"
)

const DefaultMaxBytes = 10 << 20

var ErrNotConfigured = fmt.Errorf("%w: image host not configured", domain.ErrUpstream)

type Upload struct {
	Name        string
	ContentType string
	Body        io.Reader
	Size        int64
}

// Image indica dónde quedó la imagen subida.
type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

type Uploader interface {
	Upload(ctx context.Context, u Upload) (Image, error)
}

type Service struct {
	uploader Uploader
	maxBytes int64
}

// NewService crea el servicio. uploader puede ser nil; en ese caso Upload
// falla con ErrNotConfigured.
func NewService(uploader Uploader, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Service{uploader: uploader, maxBytes: maxBytes}
}

func (s *Service) MaxBytes() int64 { return s.maxBytes }

// Upload manda u al host. Los errores del host son upstream failures.
func (s *Service) Upload(ctx context.Context, u Upload) (Image, error) {
	if s.uploader == nil {
		return Image{}, ErrNotConfigured
	}
	img, err := s.uploader.Upload(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			return Image{}, err
		}
		return Image{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return img, nil
}
