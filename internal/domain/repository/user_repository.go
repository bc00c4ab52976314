package repository

import (
	"context"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

// UserRepository stores customer accounts.
type UserRepository interface {
	Create(ctx context.Context, u entity.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Count(ctx context.Context) (int, error)
}

// AdminRepository stores back-office accounts. A default admin is seeded
// at schema init when the table is empty.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	Count(ctx context.Context) (int, error)
}
