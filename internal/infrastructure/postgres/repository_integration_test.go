package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/inotebook/internal/domain/entity"
	"github.com/oksasatya/inotebook/internal/domain/repository"
	"github.com/oksasatya/inotebook/internal/infrastructure/postgres"
	"github.com/oksasatya/inotebook/pkg/helpers"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, postgres.RunMigrations(dsn, helpers.NewDiscardLogger()))

	pool, err := postgres.NewPool(context.Background(), dsn, postgres.PoolOptions{MaxConns: 4, MinConns: 1, MaxConnLifetime: time.Hour})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepositories_Postgres(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	notes := postgres.NewNoteRepository(pool)

	email := uuid.NewString() + "@x.com"
	u := &entity.User{Name: "Alice", Email: email, PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, u))
	t.Cleanup(func() { _, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE email = $1`, email) })

	assert.ErrorIs(t, users.Create(ctx, &entity.User{Name: "B", Email: email, PasswordHash: "h"}), repository.ErrDuplicateEmail)

	got, err := users.GetByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = users.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n := &entity.Note{OwnerID: u.ID, Title: "Shop", Description: "Buy bread", Tag: entity.DefaultTag}
	require.NoError(t, notes.Create(ctx, n))

	title := "Shopping"
	updated, err := notes.Update(ctx, n.ID, repository.NotePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Shopping", updated.Title)
	assert.Equal(t, "Buy bread", updated.Description)

	list, err := notes.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, notes.Delete(ctx, n.ID))
	assert.ErrorIs(t, notes.Delete(ctx, n.ID), repository.ErrNotFound)
}
