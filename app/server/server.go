package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/sm-ecommerce/category-service/app/api"
	"github.com/sm-ecommerce/category-service/app/categories"
	"github.com/sm-ecommerce/category-service/app/middleware"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	Logger         zerolog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewHandler builds the routing table and wraps it in the middleware chain.
func NewHandler(categoryHandler *categories.CategoryHandler, db Pinger, opts Options) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/public/categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("POST /api/public/categories", categoryHandler.HandleCreate)
	mux.HandleFunc("DELETE /api/admin/categories/{id}", categoryHandler.HandleDelete)
	mux.HandleFunc("PUT /api/admin/categories/{id}", categoryHandler.HandleUpdate)

	mux.HandleFunc("GET /health", healthHandler(db))

	return middleware.Chain(mux,
		middleware.Logger(opts.Logger),
		middleware.RequestID(),
		middleware.Recover(),
		middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst),
	)
}

// New returns an http.Server for addr with conservative timeouts.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("health check failed")
			if err := api.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}); err != nil {
				hlog.FromRequest(r).Error().Err(err).Msg("failed to write health response")
			}
			return
		}
		if err := api.OKResponse(w, map[string]string{"status": "ok"}); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("failed to write health response")
		}
	}
}
