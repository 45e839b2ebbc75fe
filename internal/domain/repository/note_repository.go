package repository

import (
	"context"

	"github.com/oksasatya/inotebook/internal/domain/entity"
)

// NotePatch carries the fields of a partial update; nil means keep the stored value.
type NotePatch struct {
	Title       *string
	Description *string
	Tag         *string
}

// Empty reports whether the patch changes nothing.
func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Tag == nil
}

// NoteRepository defines the interface for note persistence.
type NoteRepository interface {
	Create(ctx context.Context, n *entity.Note) error
	GetByID(ctx context.Context, id entity.NoteID) (*entity.Note, error)
	ListByOwner(ctx context.Context, owner entity.UserID) ([]entity.Note, error)
	Update(ctx context.Context, id entity.NoteID, patch NotePatch) (*entity.Note, error)
	Delete(ctx context.Context, id entity.NoteID) error
}
