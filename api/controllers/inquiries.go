package controllers

import (
	"net/http"

	"github.com/boothlabs/boothtrack-backend/api/responses"
	"github.com/boothlabs/boothtrack-backend/api/validators"
	inquirysvc "github.com/boothlabs/boothtrack-backend/internal/inquiries"
	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
	"github.com/boothlabs/boothtrack-backend/pkg/logger"
)

type createInquiryRequest struct {
	VisitorPhone string `json:"visitorPhone"`
	ProductID    string `json:"productId"`
}

// CreateInquiry records a pending product inquiry keyed by visitor phone.
func CreateInquiry(svc inquirysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inquiry service unavailable"))
			return
		}

		var payload createInquiryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.Create(r.Context(), payload.VisitorPhone, payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, receipt)
	}
}
