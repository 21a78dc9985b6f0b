// Package minio guarda las imágenes subidas en un bucket compatible con S3.
package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"pet-adoption-api/internal/domain/images"
)

const keyPrefix = "pets/"

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicBaseURL va antes de bucket/key para armar la URL de la imagen.
	PublicBaseURL string
}

type objectPutter interface {
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type Store struct {
	client  objectPutter
	bucket  string
	baseURL string
	newID   func() string
}

var _ images.Uploader = (*Store)(nil)

// New conecta y se asegura de que exista el bucket.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("minio: endpoint and bucket are required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	base := cfg.PublicBaseURL
	if base == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		base = scheme + cfg.Endpoint
	}
	return newStore(client, cfg.Bucket, base), nil
}

func newStore(client objectPutter, bucket, baseURL string) *Store {
	return &Store{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		newID:   func() string { return uuid.NewString() },
	}
}

func (s *Store) Upload(ctx context.Context, u images.Upload) (images.Image, error) {
	key := keyPrefix + s.newID() + extension(u)
	size := u.Size
	if size <= 0 {
		size = -1
	}
	if _, err := s.client.PutObject(ctx, s.bucket, key, u.Body, size, minio.PutObjectOptions{ContentType: u.ContentType}); err != nil {
		return images.Image{}, fmt.Errorf("put object: %w", err)
	}
	return images.Image{PublicID: key, URL: s.baseURL + "/" + s.bucket + "/" + key}, nil
}

// extension usa el nombre del archivo y, si no sirve, el content type.
func extension(u images.Upload) string {
	if ext := strings.ToLower(path.Ext(u.Name)); ext != "" {
		return ext
	}
	if exts, _ := mime.ExtensionsByType(u.ContentType); len(exts) > 0 {
		return exts[0]
	}
	return ""
}
