package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/inotebook/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a lookup by id or email matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when the unique email constraint rejects an insert.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the interface for identity persistence.
// Create fills in the generated ID and CreatedAt.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id entity.UserID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
