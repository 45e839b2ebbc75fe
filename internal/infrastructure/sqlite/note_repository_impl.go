package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/inotebook/internal/domain/entity"
	"github.com/oksasatya/inotebook/internal/domain/repository"
)

const noteColumns = `id, user_id, title, description, tag, created_at`

// NoteRepository implements repository.NoteRepository using SQLite.
type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db.SqlDB}
}

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	id := entity.NoteID(uuid.NewString())
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, user_id, title, description, tag, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), n.OwnerID.String(), n.Title, n.Description, n.Tag, now,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	n.ID = id
	n.CreatedAt = now
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id entity.NoteID) (*entity.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id.String())
	return scanNote(row)
}

func (r *NoteRepository) ListByOwner(ctx context.Context, owner entity.UserID) ([]entity.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+noteColumns+`
		 FROM notes WHERE user_id = ?
		 ORDER BY created_at, rowid`, owner.String())
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, id entity.NoteID, patch repository.NotePatch) (*entity.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE notes
		 SET title = COALESCE(?, title),
		     description = COALESCE(?, description),
		     tag = COALESCE(?, tag)
		 WHERE id = ?
		 RETURNING `+noteColumns,
		nullable(patch.Title), nullable(patch.Description), nullable(patch.Tag), id.String())
	return scanNote(row)
}

func (r *NoteRepository) Delete(ctx context.Context, id entity.NoteID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*entity.Note, error) {
	n := &entity.Note{}
	var id, owner string
	if err := row.Scan(&id, &owner, &n.Title, &n.Description, &n.Tag, &n.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	n.ID = entity.NoteID(id)
	n.OwnerID = entity.UserID(owner)
	return n, nil
}

var _ repository.NoteRepository = (*NoteRepository)(nil)
