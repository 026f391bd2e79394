package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boothlabs/boothtrack-backend/api/responses"
	"github.com/boothlabs/boothtrack-backend/api/validators"
	catalogsvc "github.com/boothlabs/boothtrack-backend/internal/catalog"
	viewsvc "github.com/boothlabs/boothtrack-backend/internal/views"
	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
	"github.com/boothlabs/boothtrack-backend/pkg/logger"
)

// ListProducts returns every product in storage order.
func ListProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, products)
	}
}

// GetProduct returns the display projection for one product.
func GetProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		detail, err := svc.GetByID(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, detail)
	}
}

// GetProductStats returns the view/inquiry counters for one product.
func GetProductStats(svc viewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "views service unavailable"))
			return
		}

		stats, err := svc.StatsFor(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, stats)
	}
}

type recordViewRequest struct {
	VisitorID string `json:"visitorId"`
}

// RecordProductView stores one view event. The body is optional: an empty or
// absent body records an anonymous view.
func RecordProductView(svc viewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "views service unavailable"))
			return
		}

		var payload recordViewRequest
		if r.ContentLength != 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		if err := svc.Record(r.Context(), chi.URLParam(r, "productId"), payload.VisitorID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
