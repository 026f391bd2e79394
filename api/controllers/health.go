package controllers

import (
	"net/http"

	"github.com/boothlabs/boothtrack-backend/api/responses"
	"github.com/boothlabs/boothtrack-backend/pkg/config"
	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
	"github.com/boothlabs/boothtrack-backend/pkg/logger"
	"github.com/boothlabs/boothtrack-backend/pkg/mongodb"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BoothTrack-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the datastore answers a ping.
func HealthReady(cfg *config.Config, pinger mongodb.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BoothTrack-Env", cfg.App.Env)

		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "datastore unreachable"))
				return
			}
		}

		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
