package controllers

import (
	"net/http"

	"github.com/boothlabs/boothtrack-backend/api/responses"
	"github.com/boothlabs/boothtrack-backend/api/validators"
	visitorsvc "github.com/boothlabs/boothtrack-backend/internal/visitors"
	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
	"github.com/boothlabs/boothtrack-backend/pkg/logger"
)

type checkOrCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CheckOrCreateVisitor registers a visitor or returns the existing record
// matched by email or phone. Existing visitors get 200, new ones 201.
func CheckOrCreateVisitor(svc visitorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "visitor service unavailable"))
			return
		}

		var payload checkOrCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		visitor, created, err := svc.RegisterOrFetch(r.Context(), visitorsvc.RegisterInput{
			Name:  payload.Name,
			Email: payload.Email,
			Phone: payload.Phone,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		responses.WriteJSON(w, status, visitor)
	}
}
