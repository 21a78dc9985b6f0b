package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-api/internal/domain/images"
)

type fakePutter struct {
	bucket, key string
	body        string
	size        int64
	contentType string
	err         error
}

func (f *fakePutter) PutObject(_ context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	b, _ := io.ReadAll(r)
	f.bucket, f.key, f.body, f.size, f.contentType = bucket, key, string(b), size, opts.ContentType
	return minio.UploadInfo{Bucket: bucket, Key: key}, nil
}

func TestUpload(t *testing.T) {
	t.Parallel()

	fp := &fakePutter{}
	s := newStore(fp, "images", "https://cdn.example/")
	s.newID = func() string { return "abc" }

	img, err := s.Upload(context.Background(), images.Upload{
		Name:        "Rex.PNG",
		ContentType: "image/png",
		Body:        strings.NewReader("png"),
		Size:        3,
	})
	require.NoError(t, err)

	assert.Equal(t, images.Image{PublicID: "pets/abc.png", URL: "https://cdn.example/images/pets/abc.png"}, img)
	assert.Equal(t, "images", fp.bucket)
	assert.Equal(t, "png", fp.body)
	assert.Equal(t, int64(3), fp.size)
	assert.Equal(t, "image/png", fp.contentType)
}

func TestUpload_UnknownSize(t *testing.T) {
	t.Parallel()

	fp := &fakePutter{}
	s := newStore(fp, "images", "http://localhost:9000")
	s.newID = func() string { return "id" }

	_, err := s.Upload(context.Background(), images.Upload{Name: "cat.jpg", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, int64(-1), fp.size)
	assert.Equal(t, "pets/id.jpg", fp.key)
}

func TestUpload_Error(t *testing.T) {
	t.Parallel()

	s := newStore(&fakePutter{err: errors.New("access denied")}, "images", "http://localhost:9000")
	_, err := s.Upload(context.Background(), images.Upload{Name: "a.png", Body: strings.NewReader("x")})
	assert.ErrorContains(t, err, "access denied")
}
