package payments

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service, guard middleware.Guard) {
	r.With(guard.For("POST /payment-intent")...).Post("/payment-intent", createIntentHandler(svc))
}

type intentRequest struct {
	Price    float64 `json:"price" validate:"gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

// createIntentHandler godoc
// @Summary  Create a payment intent
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    intent  body      intentRequest  true  "Price in major units"
// @Success  200     {object}  IntentResult
// @Failure  500     {object}  web.ErrorBody
// @Router   /payment-intent [post]
func createIntentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req intentRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, r, err)
			return
		}

		res, err := svc.CreateIntent(r.Context(), req.Price, req.Currency)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, res)
	}
}
