package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// UserRepository persistence port for users.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	// List returns a page of users matching search (name/email, accent and
	// case insensitive) plus the total match count.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.User, int, error)
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	ListChildren(ctx context.Context, parentID string) ([]*entity.User, error)
}
