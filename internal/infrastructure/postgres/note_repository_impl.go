package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/inotebook/internal/domain/entity"
	"github.com/oksasatya/inotebook/internal/domain/repository"
)

const noteColumns = `id::text, user_id::text, title, description, tag, created_at`

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	owner, err := uuid.Parse(n.OwnerID.String())
	if err != nil {
		return fmt.Errorf("insert note: invalid owner id %q", n.OwnerID)
	}
	var id string
	err = r.pool.QueryRow(ctx, `
		INSERT INTO notes (user_id, title, description, tag)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at
	`, owner, n.Title, n.Description, n.Tag).Scan(&id, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	n.ID = entity.NoteID(id)
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id entity.NoteID) (*entity.Note, error) {
	nid, err := uuid.Parse(id.String())
	if err != nil {
		return nil, repository.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, nid)
	return scanNote(row)
}

func (r *NoteRepository) ListByOwner(ctx context.Context, owner entity.UserID) ([]entity.Note, error) {
	oid, err := uuid.Parse(owner.String())
	if err != nil {
		return []entity.Note{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at, id
	`, oid)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []entity.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

// Update applies the non-nil patch fields in a single statement.
func (r *NoteRepository) Update(ctx context.Context, id entity.NoteID, patch repository.NotePatch) (*entity.Note, error) {
	nid, err := uuid.Parse(id.String())
	if err != nil {
		return nil, repository.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE notes
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    tag = COALESCE($4, tag)
		WHERE id = $1
		RETURNING `+noteColumns, nid, patch.Title, patch.Description, patch.Tag)
	return scanNote(row)
}

func (r *NoteRepository) Delete(ctx context.Context, id entity.NoteID) error {
	nid, err := uuid.Parse(id.String())
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, nid)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanNote(row pgx.Row) (*entity.Note, error) {
	n := &entity.Note{}
	var id, owner string
	if err := row.Scan(&id, &owner, &n.Title, &n.Description, &n.Tag, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	n.ID = entity.NoteID(id)
	n.OwnerID = entity.UserID(owner)
	return n, nil
}

var _ repository.NoteRepository = (*NoteRepository)(nil)
