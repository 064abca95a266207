package user

import "context"

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (AdminUser, error)
	GetByID(ctx context.Context, id string) (AdminUser, error)
	Create(ctx context.Context, u AdminUser) (AdminUser, error)
}
