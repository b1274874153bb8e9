// Package account signs the dashboard user in and out.
package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/batch-dashboard/internal/client/api"
	"github.com/heartmarshall/batch-dashboard/internal/client/session"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// API paths used by the client.
const (
	PathLogin = "/auth/login"
	PathMe    = "/auth/me"
)

// User is the signed-in account as the dashboard knows it. ID is empty when
// the user was recovered from the session alone.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sender interface {
	Send(ctx context.Context, method, path string, body any, opts ...api.RequestOption) (*api.RawResponse, error)
}

// Client manages the session through the auth endpoints.
type Client struct {
	api     sender
	session *session.Store
	log     *slog.Logger
}

// NewClient creates an account client that records sessions in s.
func NewClient(a sender, s *session.Store, logger *slog.Logger) *Client {
	return &Client{api: a, session: s, log: logger.With("component", "account")}
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login validates creds locally, exchanges them for a token and stores the
// token and email in the session.
func (c *Client) Login(ctx context.Context, creds domain.LoginCredentials) (*User, error) {
	creds = creds.Normalize()
	if err := creds.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, api.FromValidation(verr)
		}
		return nil, err
	}

	resp, err := c.api.Send(ctx, http.MethodPost, PathLogin, creds)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		msg, ok := api.StringField(resp.JSON(), "message")
		if !ok {
			msg = "Login failed"
		}
		return nil, &api.Error{Kind: api.KindForStatus(resp.StatusCode), StatusCode: resp.StatusCode, Message: msg}
	}

	var out loginResponse
	if err := resp.Decode(&out); err != nil || out.Token == "" {
		return nil, &api.Error{Kind: api.KindUnclassified, StatusCode: resp.StatusCode, Message: "Login failed"}
	}
	if out.User.Email == "" {
		out.User.Email = creds.Email
	}

	c.session.SetToken(out.Token)
	c.session.SetUserEmail(out.User.Email)

	c.log.InfoContext(ctx, "signed in", slog.String("email", out.User.Email))
	return &out.User, nil
}

// Me asks the server who the token belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	resp, err := c.api.Send(ctx, http.MethodGet, PathMe, nil, api.Authenticated())
	if err != nil {
		return nil, err
	}
	if apiErr := api.Classify(resp); apiErr != nil {
		return nil, apiErr
	}

	var u User
	if err := resp.Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CurrentUser returns the signed-in user. When the server cannot be reached
// it falls back to the email stored with the session; a server that rejects
// the token still wins.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	u, err := c.Me(ctx)
	if err == nil {
		return u, nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return nil, err
	}

	email, ok := c.session.UserEmail()
	if !ok {
		return nil, err
	}
	c.log.DebugContext(ctx, "using stored email", slog.String("error", err.Error()))
	return &User{Email: email}, nil
}

// Logout forgets the token and the email.
func (c *Client) Logout() {
	c.session.Clear()
}
