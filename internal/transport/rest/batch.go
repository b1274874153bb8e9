package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// batchService defines the minimal interface needed by BatchHandler.
type batchService interface {
	GetSettings(ctx context.Context) (domain.BatchSettings, error)
	Start(ctx context.Context, settings domain.BatchSettings) (*domain.BatchRun, error)
	Stop(ctx context.Context) (*domain.BatchRun, error)
	AuthURL(ctx context.Context) (string, error)
}

// BatchHandler serves the batch trigger endpoints.
type BatchHandler struct {
	svc batchService
	log *slog.Logger
}

// NewBatchHandler creates a BatchHandler.
func NewBatchHandler(svc batchService, logger *slog.Logger) *BatchHandler {
	return &BatchHandler{svc: svc, log: logger.With("handler", "batch")}
}

// Response statuses of the start and stop endpoints.
const (
	statusStarted = "started"
	statusPending = "pending"
	statusStopped = "stopped"
	statusIdle    = "idle"
)

type runResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	TaskID  string `json:"task_id,omitempty"`
}

type validationResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

type authURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// Settings handles GET /batch-settings.
func (h *BatchHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetSettings(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Start handles POST /batch/start and POST /start-master-batch.
// An active run is reported with 200 and status "pending", not as an error.
func (h *BatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	var settings domain.BatchSettings
	if err := decodeJSON(r, w, &settings); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Message: "Invalid batch settings",
			Errors:  []domain.FieldError{{Field: "body", Message: "Must be a JSON object with numeric fields"}},
		})
		return
	}

	run, err := h.svc.Start(r.Context(), settings)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
				Message: "Invalid batch settings",
				Errors:  verr.Errors,
			})
		case errors.Is(err, domain.ErrBatchAlreadyRunning):
			writeJSON(w, http.StatusOK, runResponse{Status: statusPending, Message: "Batch already running"})
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "Access token required")
		default:
			h.log.ErrorContext(r.Context(), "start batch", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "Failed to start batch: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, runResponse{
		Status:  statusStarted,
		Message: "Batch started successfully",
		TaskID:  run.TaskID.String(),
	})
}

// Stop handles POST /stop-master-batch.
func (h *BatchHandler) Stop(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Stop(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusOK, runResponse{Status: statusIdle, Message: "No batch is running"})
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, runResponse{
		Status:  statusStopped,
		Message: "Batch stopped",
		TaskID:  run.TaskID.String(),
	})
}

// AuthURL handles GET /get_auth_url.
func (h *BatchHandler) AuthURL(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.AuthURL(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, authURLResponse{AuthURL: u})
}

func (h *BatchHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Access token required")
	case errors.Is(err, domain.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "Calendar authorization is not configured")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
