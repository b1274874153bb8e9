package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/batch-dashboard/pkg/ctxutil"
)

// requestInfo is filled in by Auth further down the chain; Logger runs
// outside it and cannot see the authenticated context.
type requestInfo struct {
	userID uuid.UUID
}

type requestInfoKey struct{}

// Logger writes one access-log line per request. 4xx responses log at warn
// and 5xx at error, so failed batch starts stand out.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			rw := &recorder{ResponseWriter: w, status: http.StatusOK}
			info := &requestInfo{}

			next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info)))

			level := slog.LevelInfo
			if rw.status >= 500 {
				level = slog.LevelError
			} else if rw.status >= 400 {
				level = slog.LevelWarn
			}

			attrs := make([]slog.Attr, 0, 6)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Duration("duration", time.Since(began)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			)
			if info.userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", info.userID.String()))
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// recorder remembers the first status written through it.
type recorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *recorder) WriteHeader(code int) {
	if !w.written {
		w.status, w.written = code, true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *recorder) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}
