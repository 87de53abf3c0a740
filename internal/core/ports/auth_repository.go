package ports

import (
	"context"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// AuthRepository persists back-office user accounts.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
