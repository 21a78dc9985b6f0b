package donations

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service, guard middleware.Guard) {
	r.Route("/donations", func(dr chi.Router) {
		dr.Get("/", listCampaignsHandler(svc))
		dr.With(guard.For("POST /donations")...).Post("/", createCampaignHandler(svc))

		dr.Get("/{id}", getCampaignHandler(svc))
		dr.With(guard.For("POST /donations/{id}")...).Post("/{id}", appendDonationHandler(svc))
		dr.With(guard.For("PATCH /donations/{id}")...).Patch("/{id}", updateCampaignHandler(svc))
		dr.With(guard.For("DELETE /donations/{id}")...).Delete("/{id}", deleteHandler(svc))
	})
}

type createCampaignRequest struct {
	Category         string  `json:"category"`
	Name             string  `json:"name" validate:"required"`
	ShortDescription string  `json:"shortDescription"`
	LongDescription  string  `json:"longDescription"`
	Image            string  `json:"image"`
	MaxAmount        float64 `json:"maxAmount" validate:"gte=0"`
	LastDate         string  `json:"lastDate" validate:"omitempty,datetime=2006-01-02"`
}

// createCampaignHandler godoc
// @Summary  Create a donation campaign
// @Tags     donations
// @Accept   json
// @Produce  json
// @Param    campaign  body      createCampaignRequest  true  "Campaign"
// @Success  201       {object}  Campaign
// @Failure  401       {object}  web.ErrorBody
// @Router   /donations [post]
func createCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCampaignRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, r, err)
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		c, err := svc.Create(r.Context(), claims.Email, CreateInput(req))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, c)
	}
}

// listCampaignsHandler godoc
// @Summary  List donation campaigns, newest first
// @Tags     donations
// @Produce  json
// @Param    ownerEmail  query  string  false  "Only campaigns created by this email"
// @Success  200  {array}  Campaign
// @Router   /donations [get]
func listCampaignsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), Filter{OwnerEmail: r.URL.Query().Get("ownerEmail")})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		if items == nil {
			items = []Campaign{}
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func getCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), campaignID(r))
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, c)
	}
}

// appendDonationHandler godoc
// @Summary  Record a donation against a campaign
// @Tags     donations
// @Accept   json
// @Produce  json
// @Param    id        path      string    true  "Campaign id"
// @Param    donation  body      Donation  true  "Donation"
// @Success  200       {object}  Campaign
// @Failure  404       {object}  web.ErrorBody
// @Failure  409       {object}  web.ErrorBody
// @Router   /donations/{id} [post]
func appendDonationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d Donation
		if err := web.DecodeJSON(r, &d); err != nil {
			web.WriteError(w, r, err)
			return
		}

		c, err := svc.AppendDonation(r.Context(), campaignID(r), d)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, c)
	}
}

// updateCampaignHandler godoc
// @Summary  Partially update a campaign
// @Tags     donations
// @Accept   json
// @Produce  json
// @Param    id     path      string  true  "Campaign id"
// @Param    patch  body      Patch   true  "Fields to change"
// @Success  200    {object}  UpdateResult
// @Router   /donations/{id} [patch]
func updateCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Patch
		if err := web.DecodeJSON(r, &p); err != nil {
			web.WriteError(w, r, err)
			return
		}

		res, err := svc.Update(r.Context(), campaignID(r), p)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, res)
	}
}

type removalRequest struct {
	DonorEmail string `json:"donorEmail"`
	Date       string `json:"date"`
}

// deleteHandler godoc
// @Summary      Delete a campaign or one embedded donation
// @Description  Without donorEmail and date the whole campaign is deleted.
// @Description  With both, only the matching donation is removed.
// @Tags         donations
// @Produce      json
// @Param        id          path   string  true   "Campaign id"
// @Param        donorEmail  query  string  false  "Donor of the donation to remove"
// @Param        date        query  string  false  "Date of the donation to remove"
// @Success      200  {object}  Campaign
// @Failure      404  {object}  web.ErrorBody
// @Router       /donations/{id} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel, err := readRemoval(r)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		id := campaignID(r)
		switch {
		case sel.DonorEmail == "" && sel.Date == "":
			if err := svc.Delete(r.Context(), id); err != nil {
				web.WriteError(w, r, err)
				return
			}
			web.WriteJSON(w, http.StatusOK, web.Deleted{Deleted: true})

		case sel.DonorEmail == "" || sel.Date == "":
			web.WriteError(w, r, fmt.Errorf("%w: donorEmail and date must be sent together", ErrInvalidInput))

		default:
			c, err := svc.RemoveDonation(r.Context(), id, sel.DonorEmail, sel.Date)
			if err != nil {
				web.WriteError(w, r, err)
				return
			}
			web.WriteJSON(w, http.StatusOK, c)
		}
	}
}

// readRemoval toma el selector de la query; si la query no trae ninguno de
// los dos campos, lo lee del body JSON opcional.
func readRemoval(r *http.Request) (removalRequest, error) {
	q := r.URL.Query()
	sel := removalRequest{
		DonorEmail: strings.TrimSpace(q.Get("donorEmail")),
		Date:       strings.TrimSpace(q.Get("date")),
	}
	if sel.DonorEmail != "" || sel.Date != "" {
		return sel, nil
	}

	if _, err := web.DecodeOptionalJSON(r, &sel); err != nil {
		return removalRequest{}, err
	}
	sel.DonorEmail = strings.TrimSpace(sel.DonorEmail)
	sel.Date = strings.TrimSpace(sel.Date)
	return sel, nil
}

func campaignID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "id"))
}
