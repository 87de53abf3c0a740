package ports

import (
	"context"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// AuthService implements back-office registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
