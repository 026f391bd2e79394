package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/boothlabs/boothtrack-backend/api/responses"
	reportingsvc "github.com/boothlabs/boothtrack-backend/internal/reporting"
	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
	"github.com/boothlabs/boothtrack-backend/pkg/logger"
)

// AdminStats returns the dashboard aggregates.
func AdminStats(svc reportingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reporting service unavailable"))
			return
		}

		stats, err := svc.ComputeStats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, stats)
	}
}

// AdminExport streams the inquiry log as a CSV attachment. The filename
// carries the server-clock date, not anything derived from the data.
func AdminExport(svc reportingsvc.Service, logg *logger.Logger, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reporting service unavailable"))
			return
		}

		csv, err := svc.ExportCSV(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filename := fmt.Sprintf("inquiries-%s.csv", now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(csv); err != nil && logg != nil {
			logg.Error(r.Context(), "export.write_failed", err)
		}
	}
}
