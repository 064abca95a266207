package user

import (
	"context"
)

// AuthService defines authentication for admin users.
type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req RefreshRequest) (LoginResponse, error)
}
