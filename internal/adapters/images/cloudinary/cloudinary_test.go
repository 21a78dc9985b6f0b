package cloudinary

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/images"
)

type fakeGateway struct {
	body     string
	params   uploader.UploadParams
	deadline bool

	res *uploader.UploadResult
	err error
}

func (f *fakeGateway) Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	if r, ok := file.(io.Reader); ok {
		b, _ := io.ReadAll(r)
		f.body = string(b)
	}
	f.params = params
	_, f.deadline = ctx.Deadline()
	return f.res, f.err
}

func newTestUploader(gw gateway) *Uploader {
	return &Uploader{gw: gw, cfg: Config{Folder: "pets", Timeout: time.Second}}
}

func TestUpload(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{res: &uploader.UploadResult{
		PublicID:  "pets/abc",
		SecureURL: "https://res.example/pets/abc.png",
	}}
	u := newTestUploader(gw)

	img, err := u.Upload(context.Background(), images.Upload{
		Name:        "rex.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, images.Image{PublicID: "pets/abc", URL: "https://res.example/pets/abc.png"}, img)

	assert.Equal(t, "png-bytes", gw.body)
	assert.Equal(t, "pets", gw.params.Folder)
	assert.True(t, gw.deadline, "upload runs under the configured timeout")
}

func TestUpload_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		gw   *fakeGateway
	}{
		{"transport error", &fakeGateway{err: errors.New("connection reset")}},
		{"api error in body", &fakeGateway{res: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid Signature"}}}},
		{"no result", &fakeGateway{}},
		{"no url", &fakeGateway{res: &uploader.UploadResult{PublicID: "pets/abc"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTestUploader(tc.gw).Upload(context.Background(), images.Upload{Body: strings.NewReader("x")})
			assert.ErrorIs(t, err, domain.ErrUpstream)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(Config{CloudName: "demo"})
	assert.Error(t, err)

	u, err := New(Config{CloudName: "demo", APIKey: "key", APISecret: "secret"})
	require.NoError(t, err)
	assert.IsType(t, &uploader.API{}, u.gw)
	assert.Equal(t, DefaultTimeout, u.cfg.Timeout)
}
