package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/inotebook/internal/domain/entity"
	repo "github.com/oksasatya/inotebook/internal/domain/repository"
	"github.com/oksasatya/inotebook/pkg/validation"
)

// NoteService enforces that every note operation acts only on the caller's notes.
type NoteService struct {
	Repo   repo.NoteRepository
	Logger *logrus.Logger
}

func NewNoteService(repo repo.NoteRepository, logger *logrus.Logger) *NoteService {
	return &NoteService{Repo: repo, Logger: logger}
}

type NoteInput struct {
	Title       string `json:"title" validate:"title"`
	Description string `json:"description" validate:"desc"`
	Tag         string `json:"tag"`
}

// NotePatchInput carries an update. Absent fields stay unchanged; an empty tag counts as absent.
type NotePatchInput struct {
	Title       *string `json:"title" validate:"omitnil,title"`
	Description *string `json:"description" validate:"omitnil,desc"`
	Tag         *string `json:"tag"`
}

func (in NotePatchInput) patch() repo.NotePatch {
	p := repo.NotePatch{Title: in.Title, Description: in.Description}
	if in.Tag != nil && *in.Tag != "" {
		p.Tag = in.Tag
	}
	return p
}

func (s *NoteService) ListNotes(ctx context.Context, owner entity.UserID) ([]entity.Note, error) {
	notes, err := s.Repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, internal(s.Logger, "list notes failed", err, logrus.Fields{"user_id": owner})
	}
	return notes, nil
}

func (s *NoteService) AddNote(ctx context.Context, owner entity.UserID, in NoteInput) (*entity.Note, error) {
	if err := validation.Struct(in); err != nil {
		return nil, invalid(err)
	}
	tag := in.Tag
	if tag == "" {
		tag = entity.DefaultTag
	}

	n := &entity.Note{OwnerID: owner, Title: in.Title, Description: in.Description, Tag: tag}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, internal(s.Logger, "create note failed", err, logrus.Fields{"user_id": owner})
	}
	notesCreated.Add(1)
	return n, nil
}

func (s *NoteService) UpdateNote(ctx context.Context, owner entity.UserID, id entity.NoteID, in NotePatchInput) (*entity.Note, error) {
	if err := validation.Struct(in); err != nil {
		return nil, invalid(err)
	}

	current, err := s.loadOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	p := in.patch()
	if p.Empty() {
		return current, nil
	}

	updated, err := s.Repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal(s.Logger, "update note failed", err, logrus.Fields{"user_id": owner, "note_id": id})
	}
	notesUpdated.Add(1)
	return updated, nil
}

// DeleteNote removes the note and returns it as it was before deletion.
func (s *NoteService) DeleteNote(ctx context.Context, owner entity.UserID, id entity.NoteID) (*entity.Note, error) {
	snapshot, err := s.loadOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal(s.Logger, "delete note failed", err, logrus.Fields{"user_id": owner, "note_id": id})
	}
	notesDeleted.Add(1)
	return snapshot, nil
}

// loadOwned fetches the stored note and checks its owner before any mutation.
func (s *NoteService) loadOwned(ctx context.Context, owner entity.UserID, id entity.NoteID) (*entity.Note, error) {
	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal(s.Logger, "get note failed", err, logrus.Fields{"user_id": owner, "note_id": id})
	}
	if !n.OwnedBy(owner) {
		notesForbidden.Add(1)
		s.Logger.WithFields(logrus.Fields{"user_id": owner, "note_id": id}).Warn("note access denied")
		return nil, ErrForbidden
	}
	return n, nil
}
