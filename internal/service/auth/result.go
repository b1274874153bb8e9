package auth

import "github.com/heartmarshall/batch-dashboard/internal/domain"

// AuthResult is returned by a successful login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
