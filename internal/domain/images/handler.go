package images

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/web"
)

// Campos del form donde se busca el archivo, en orden.
var fileFields = []string{"image", "file"}

func RegisterRoutes(r chi.Router, svc *Service, guard middleware.Guard) {
	r.With(guard.For("POST /cloudinary")...).Post("/cloudinary", uploadHandler(svc))
}

// uploadHandler godoc
// @Summary  Upload an image
// @Tags     images
// @Accept   mpfd
// @Produce  json
// @Param    image  formData  file  true  "Image file"
// @Success  200    {object}  Image
// @Failure  400    {object}  web.ErrorBody
// @Failure  500    {object}  web.ErrorBody
// @Router   /cloudinary [post]
func uploadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, svc.MaxBytes())
		if err := r.ParseMultipartForm(svc.MaxBytes()); err != nil {
			web.WriteError(w, r, fmt.Errorf("%w: multipart form required", domain.ErrInvalidInput))
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		file, header, err := formFile(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		defer file.Close()

		ct := header.Header.Get("Content-Type")
		if ct != "" && !strings.HasPrefix(ct, "image/") {
			web.WriteError(w, r, fmt.Errorf("%w: %s is not an image", domain.ErrInvalidInput, ct))
			return
		}

		img, err := svc.Upload(r.Context(), Upload{
			Name:        header.Filename,
			ContentType: ct,
			Body:        file,
			Size:        header.Size,
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, img)
	}
}

func formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	for _, field := range fileFields {
		f, h, err := r.FormFile(field)
		if err == nil {
			return f, h, nil
		}
		if !errors.Is(err, http.ErrMissingFile) {
			return nil, nil, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidInput, field, err)
		}
	}
	return nil, nil, fmt.Errorf("%w: image file required", domain.ErrInvalidInput)
}
