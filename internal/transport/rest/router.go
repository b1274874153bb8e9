package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/batch-dashboard/internal/config"
	"github.com/heartmarshall/batch-dashboard/internal/transport/middleware"
)

// RouterDeps is everything NewRouter mounts.
type RouterDeps struct {
	Logger         *slog.Logger
	Auth           *AuthHandler
	Batch          *BatchHandler
	Health         *HealthHandler
	TokenValidator middleware.TokenValidator
	CORS           config.CORSConfig
	LoginLimiter   *middleware.RateLimiter
	LoginPerMinute int
}

// NewRouter builds the API handler. Health probes and login are public;
// everything else requires a bearer token.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	login := http.Handler(http.HandlerFunc(d.Auth.Login))
	if d.LoginLimiter != nil {
		login = d.LoginLimiter.Limit(d.LoginPerMinute)(login)
	}
	mux.Handle("POST /auth/login", login)

	protected := middleware.Auth(d.TokenValidator)
	mux.Handle("GET /auth/me", protected(http.HandlerFunc(d.Auth.Me)))
	mux.Handle("GET /batch-settings", protected(http.HandlerFunc(d.Batch.Settings)))
	mux.Handle("POST /batch/start", protected(http.HandlerFunc(d.Batch.Start)))
	mux.Handle("POST /start-master-batch", protected(http.HandlerFunc(d.Batch.Start)))
	mux.Handle("POST /stop-master-batch", protected(http.HandlerFunc(d.Batch.Stop)))
	mux.Handle("GET /get_auth_url", protected(http.HandlerFunc(d.Batch.AuthURL)))

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)(mux)
}
