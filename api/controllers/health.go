package controllers

import (
	"context"
	"net/http"

	"github.com/stitchline/stitchline-backend/api/responses"
	"github.com/stitchline/stitchline-backend/pkg/config"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
)

type readinessPinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Stitchline-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the database and redis both answer a
// ping.
func HealthReady(cfg *config.Config, database, cache readinessPinger) http.HandlerFunc {
	deps := []struct {
		name   string
		pinger readinessPinger
	}{
		{"database", database},
		{"redis", cache},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Stitchline-Env", cfg.App.Env)
		for _, dep := range deps {
			if dep.pinger == nil {
				continue
			}
			if err := dep.pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, dep.name+" unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
