package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/inotebook/internal/infrastructure/sqlite"
	"github.com/oksasatya/inotebook/pkg/helpers"
)

const testSecret = "test-secret"

type services struct {
	users  *UserService
	notes  *NoteService
	tokens *helpers.TokenService
}

func newServices(t *testing.T) services {
	t.Helper()
	db, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })

	logger := helpers.NewDiscardLogger()
	tokens := helpers.NewTokenService(testSecret)
	return services{
		users:  NewUserService(sqlite.NewUserRepository(db), tokens, nil, bcrypt.MinCost, logger),
		notes:  NewNoteService(sqlite.NewNoteRepository(db), logger),
		tokens: tokens,
	}
}

func strPtr(s string) *string { return &s }
