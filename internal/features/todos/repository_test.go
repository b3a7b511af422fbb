package todos

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/azul/internal/database"
	apperrors "github.com/xyz-asif/azul/pkg/errors"
)

// newTestRepository connects to MONGO_TEST_URI and uses a throwaway database.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	db, err := database.Connect(database.Options{
		URI:     uri,
		DBName:  fmt.Sprintf("azul_test_%d", time.Now().UnixNano()),
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.Database.Drop(ctx)
		_ = db.Disconnect(ctx)
	})

	repo := NewRepository(db.Database)
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	return repo
}

func TestRepository_SaveFindExistsDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	due := today().AddDays(2)
	todo := &Todo{Title: "Buy milk", Description: "2%", DueDate: dueTime(&due)}
	require.NoError(t, repo.Save(ctx, todo))
	require.False(t, todo.ID.IsZero())
	require.False(t, todo.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, todo.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, ToResponse(todo), ToResponse(found))

	found.Completed = true
	require.NoError(t, repo.Save(ctx, found))
	again, err := repo.FindByID(ctx, todo.ID.Hex())
	require.NoError(t, err)
	require.True(t, again.Completed)

	exists, err := repo.ExistsByID(ctx, todo.ID.Hex())
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, repo.DeleteByID(ctx, todo.ID.Hex()))
	gone, err := repo.FindByID(ctx, todo.ID.Hex())
	require.NoError(t, err)
	require.Nil(t, gone)

	exists, err = repo.ExistsByID(ctx, todo.ID.Hex())
	require.NoError(t, err)
	require.False(t, exists)

	// Deleting an absent record is a no-op.
	require.NoError(t, repo.DeleteByID(ctx, todo.ID.Hex()))
}

func TestRepository_SaveUnknownIDIsNotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Save(context.Background(), &Todo{ID: primitive.NewObjectID(), Title: "ghost"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepository_FindAllOrdering(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	start := today()
	for _, tc := range []struct {
		title  string
		offset *int
	}{
		{"none-1", nil},
		{"plus-1", intPtr(1)},
		{"plus-9", intPtr(9)},
		{"none-2", nil},
		{"plus-4", intPtr(4)},
	} {
		todo := &Todo{Title: tc.title}
		if tc.offset != nil {
			d := start.AddDays(*tc.offset)
			todo.DueDate = dueTime(&d)
		}
		require.NoError(t, repo.Save(ctx, todo))
	}

	todos, err := repo.FindAll(ctx)
	require.NoError(t, err)

	titles := make([]string, 0, len(todos))
	for _, todo := range todos {
		titles = append(titles, todo.Title)
	}
	require.Equal(t, []string{"plus-9", "plus-4", "plus-1", "none-1", "none-2"}, titles)
}

func TestRepository_InvalidID(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.FindByID(context.Background(), "zzz")
	require.ErrorIs(t, err, apperrors.ErrInvalidID)
}

func intPtr(n int) *int { return &n }
