package pets

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/web"
)

// RegisterRoutes monta /all-pets. guard decide qué rutas exigen sesión.
func RegisterRoutes(r chi.Router, svc *Service, guard middleware.Guard) {
	r.Route("/all-pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.With(guard.For("POST /all-pets")...).Post("/", createPetHandler(svc))

		pr.Get("/{id}", getPetHandler(svc))
		pr.With(guard.For("PATCH /all-pets/{id}")...).Patch("/{id}", updatePetHandler(svc))
		pr.With(guard.For("DELETE /all-pets/{id}")...).Delete("/{id}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name             string `json:"name" validate:"required"`
	Category         string `json:"category"`
	Age              int    `json:"age" validate:"gte=0"`
	Location         string `json:"location"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	Image            string `json:"image"`
}

// createPetHandler godoc
// @Summary  Create a pet listing
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    pet  body      createPetRequest  true  "Pet"
// @Success  201  {object}  Pet
// @Failure  400  {object}  web.ErrorBody
// @Failure  401  {object}  web.ErrorBody
// @Router   /all-pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, r, err)
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		p, err := svc.Create(r.Context(), claims.Email, CreateInput{
			Name:             req.Name,
			Category:         req.Category,
			Age:              req.Age,
			Location:         req.Location,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
			Image:            req.Image,
		})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusCreated, p)
	}
}

// listPetsHandler godoc
// @Summary  List pets, newest first
// @Tags     pets
// @Produce  json
// @Param    ownerEmail  query  string  false  "Only pets listed by this email"
// @Success  200  {array}  Pet
// @Router   /all-pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), Filter{OwnerEmail: r.URL.Query().Get("ownerEmail")})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		if items == nil {
			items = []Pet{}
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

// getPetHandler godoc
// @Summary  Get a pet
// @Tags     pets
// @Produce  json
// @Param    id   path      string  true  "Pet id"
// @Success  200  {object}  Pet
// @Failure  404  {object}  web.ErrorBody
// @Router   /all-pets/{id} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), strings.TrimSpace(chi.URLParam(r, "id")))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary  Partially update a pet
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    id     path      string  true  "Pet id"
// @Param    patch  body      Patch   true  "Fields to change"
// @Success  200    {object}  UpdateResult
// @Failure  404    {object}  web.ErrorBody
// @Router   /all-pets/{id} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Patch
		if err := web.DecodeJSON(r, &p); err != nil {
			web.WriteError(w, r, err)
			return
		}

		res, err := svc.Update(r.Context(), strings.TrimSpace(chi.URLParam(r, "id")), p)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, res)
	}
}

// deletePetHandler godoc
// @Summary  Delete a pet
// @Tags     pets
// @Produce  json
// @Param    id   path      string  true  "Pet id"
// @Success  200  {object}  web.Deleted
// @Failure  404  {object}  web.ErrorBody
// @Router   /all-pets/{id} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), strings.TrimSpace(chi.URLParam(r, "id"))); err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, web.Deleted{Deleted: true})
	}
}
