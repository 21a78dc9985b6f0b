package users

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service, guard middleware.Guard) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.With(guard.For("POST /users")...).Post("/", registerUserHandler(svc))

		ur.Get("/{id}", getUserHandler(svc))
		ur.With(guard.For("PATCH /users/{id}")...).Patch("/{id}", updateRoleHandler(svc))
		ur.With(guard.For("DELETE /users/{id}")...).Delete("/{id}", deleteUserHandler(svc))
	})
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

// registerUserHandler godoc
// @Summary  Register a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    user  body      registerRequest  true  "User"
// @Success  201   {object}  User
// @Failure  409   {object}  web.ErrorBody
// @Router   /users [post]
func registerUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, r, err)
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput(req))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, u)
	}
}

// listUsersHandler godoc
// @Summary  List users
// @Tags     users
// @Produce  json
// @Param    email  query  string  false  "Exact email"
// @Success  200  {array}  User
// @Router   /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), Filter{Email: r.URL.Query().Get("email")})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		if items == nil {
			items = []User{}
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), strings.TrimSpace(chi.URLParam(r, "id")))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, u)
	}
}

// updateRoleHandler godoc
// @Summary  Change a user's role
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id     path      string     true  "User id"
// @Param    patch  body      RolePatch  true  "Role"
// @Success  200    {object}  UpdateResult
// @Router   /users/{id} [patch]
func updateRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p RolePatch
		if err := web.DecodeJSON(r, &p); err != nil {
			web.WriteError(w, r, err)
			return
		}

		res, err := svc.UpdateRole(r.Context(), strings.TrimSpace(chi.URLParam(r, "id")), p)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, res)
	}
}

func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), strings.TrimSpace(chi.URLParam(r, "id"))); err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, web.Deleted{Deleted: true})
	}
}
