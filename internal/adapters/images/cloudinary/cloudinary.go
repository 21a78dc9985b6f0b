// Package cloudinary sube imágenes con el SDK oficial de Cloudinary.
package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/images"
)

const DefaultTimeout = 30 * time.Second

type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	Timeout   time.Duration
}

// gateway es la parte del SDK que usa el adaptador; los tests la reemplazan.
type gateway interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

type Uploader struct {
	gw  gateway
	cfg Config
}

var _ images.Uploader = (*Uploader)(nil)

func New(cfg Config) (*Uploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary: cloud name, api key and secret are required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: init: %w", err)
	}
	return &Uploader{gw: &cld.Upload, cfg: cfg}, nil
}

// Upload firma y envía el archivo; el SDK arma el multipart.
func (u *Uploader) Upload(ctx context.Context, up images.Upload) (images.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, u.cfg.Timeout)
	defer cancel()

	res, err := u.gw.Upload(ctx, up.Body, uploader.UploadParams{Folder: u.cfg.Folder})
	if err != nil {
		return images.Image{}, fmt.Errorf("%w: cloudinary upload: %v", domain.ErrUpstream, err)
	}
	if res == nil {
		return images.Image{}, fmt.Errorf("%w: cloudinary upload returned no result", domain.ErrUpstream)
	}
	// El SDK devuelve los rechazos de la API en el cuerpo, no como error.
	if res.Error.Message != "" {
		return images.Image{}, fmt.Errorf("%w: cloudinary upload: %s", domain.ErrUpstream, res.Error.Message)
	}
	if res.SecureURL == "" {
		return images.Image{}, fmt.Errorf("%w: cloudinary upload returned no url", domain.ErrUpstream)
	}
	return images.Image{PublicID: res.PublicID, URL: res.SecureURL}, nil
}
