package auth

import "github.com/google/uuid"

// Identity is what a valid access token asserts about its bearer.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
