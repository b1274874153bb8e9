// Package batch triggers and inspects master batch runs.
package batch

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/batch-dashboard/internal/client/api"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// API paths used by the client.
const (
	PathStartBatch = "/start-master-batch"
	PathStopBatch  = "/stop-master-batch"
	PathAuthURL    = "/get_auth_url"
	PathSettings   = "/batch-settings"
)

// ErrAuthURLUnavailable is returned when the server does not hand out an
// authorization URL.
var ErrAuthURLUnavailable = errors.New("Failed to get auth URL")

type sender interface {
	Send(ctx context.Context, method, path string, body any, opts ...api.RequestOption) (*api.RawResponse, error)
}

// Client talks to the batch endpoints. Every call requires a token.
type Client struct {
	api sender
	log *slog.Logger
}

// NewClient creates a batch client on top of an API client.
func NewClient(s sender, logger *slog.Logger) *Client {
	return &Client{api: s, log: logger.With("component", "batch")}
}

// StartBatch submits settings and classifies the answer; see Classify.
func (c *Client) StartBatch(ctx context.Context, settings domain.BatchSettings) (*StartResult, error) {
	resp, err := c.api.Send(ctx, http.MethodPost, PathStartBatch, settings, api.Authenticated())
	if err != nil {
		return nil, err
	}

	result, err := Classify(resp.StatusCode, resp.JSON())
	if err != nil {
		c.log.DebugContext(ctx, "batch start rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()))
		return nil, err
	}
	return result, nil
}

// GetAuthURL returns the calendar authorization URL.
func (c *Client) GetAuthURL(ctx context.Context) (string, error) {
	resp, err := c.api.Send(ctx, http.MethodGet, PathAuthURL, nil, api.Authenticated())
	if err != nil {
		if errors.Is(err, api.ErrNoToken) {
			return "", err
		}
		return "", ErrAuthURLUnavailable
	}

	if u, ok := api.StringField(resp.JSON(), "auth_url"); ok && resp.IsSuccess() {
		return u, nil
	}
	return "", ErrAuthURLUnavailable
}

// StopMasterBatch asks the server to stop the running batch and returns its
// answer as-is.
func (c *Client) StopMasterBatch(ctx context.Context) (map[string]any, error) {
	resp, err := c.api.Send(ctx, http.MethodPost, PathStopBatch, nil, api.Authenticated())
	if err != nil {
		return nil, err
	}
	if apiErr := api.Classify(resp); apiErr != nil {
		return nil, apiErr
	}
	return resp.JSON(), nil
}

// GetSettings returns the last submitted settings. Fields the server leaves
// out or sends in the wrong shape take their default values.
func (c *Client) GetSettings(ctx context.Context) (domain.BatchSettings, error) {
	resp, err := c.api.Send(ctx, http.MethodGet, PathSettings, nil, api.Authenticated())
	if err != nil {
		return domain.BatchSettings{}, err
	}
	if apiErr := api.Classify(resp); apiErr != nil {
		return domain.BatchSettings{}, apiErr
	}

	body := resp.JSON()
	s := domain.DefaultBatchSettings()
	if v, ok := body[domain.FieldTargetPercentage].(float64); ok {
		s.TargetPercentage = v
	}
	if v, ok := body[domain.FieldImportSetupID].(float64); ok && v == float64(int64(v)) {
		s.ImportSetupID = int64(v)
	}
	if v, ok := body[domain.FieldHourlyBatchCount].(float64); ok {
		s.HourlyBatchCount = v
	}
	return s, nil
}
