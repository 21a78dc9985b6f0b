package adoptions

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service, guard middleware.Guard) {
	r.Route("/adoption-requests", func(ar chi.Router) {
		ar.Get("/", listRequestsHandler(svc))
		ar.With(guard.For("POST /adoption-requests")...).Post("/", createRequestHandler(svc))

		ar.Get("/{id}", getRequestHandler(svc))
		ar.With(guard.For("DELETE /adoption-requests/{id}")...).Delete("/{id}", deleteRequestHandler(svc))
	})
}

type createRequest struct {
	PetID          string         `json:"petId"`
	PetName        string         `json:"petName"`
	PetImage       string         `json:"petImage"`
	RequesterName  string         `json:"requesterName"`
	RequesterEmail string         `json:"requesterEmail" validate:"required,email"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	OwnerEmail     string         `json:"ownerEmail" validate:"omitempty,email"`
	Extra          map[string]any `json:"extra"`
}

// createRequestHandler godoc
// @Summary  Ask to adopt a pet
// @Tags     adoptions
// @Accept   json
// @Produce  json
// @Param    request  body      createRequest  true  "Adoption request"
// @Success  201      {object}  Request
// @Failure  400      {object}  web.ErrorBody
// @Router   /adoption-requests [post]
func createRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		fields, err := web.DecodeJSONFields(r, &req)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		if req.Extra, err = collectExtra(fields, req.Extra); err != nil {
			web.WriteError(w, r, err)
			return
		}

		out, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, out)
	}
}

var knownRequestFields = map[string]bool{
	"petId": true, "petName": true, "petImage": true,
	"requesterName": true, "requesterEmail": true,
	"phone": true, "address": true, "ownerEmail": true, "extra": true,
}

// collectExtra guarda en extra los campos que el formulario envía y el modelo no conoce.
func collectExtra(fields map[string]json.RawMessage, extra map[string]any) (map[string]any, error) {
	for k, raw := range fields {
		if knownRequestFields[k] {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidInput, k, err)
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra, nil
}

// listRequestsHandler godoc
// @Summary  List adoption requests
// @Tags     adoptions
// @Produce  json
// @Param    requesterEmail  query  string  false  "Requests made by this email"
// @Param    ownerEmail      query  string  false  "Requests for pets listed by this email"
// @Success  200  {array}  Request
// @Router   /adoption-requests [get]
func listRequestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), Filter{
			RequesterEmail: q.Get("requesterEmail"),
			OwnerEmail:     q.Get("ownerEmail"),
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		if items == nil {
			items = []Request{}
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func getRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.GetByID(r.Context(), strings.TrimSpace(chi.URLParam(r, "id")))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func deleteRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), strings.TrimSpace(chi.URLParam(r, "id"))); err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, web.Deleted{Deleted: true})
	}
}
