// internal/repo/todo_test.go
package repo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatal(err)
	}

	// Очистка
	pool.Exec(context.Background(), "TRUNCATE todos RESTART IDENTITY")

	return pool
}

func TestTodoRepo_Create(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTodoRepo(pool)

	created, err := repo.Create(context.Background(), model.NewTodo{
		Title: "  Test  ",
		Description: strPtr("desc"),
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Test", created.Title)
	assert.False(t, created.Completed)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestTodoRepo_CreateValidation(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTodoRepo(pool)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.NewTodo{Title: ""})
	assert.ErrorIs(t, err, ErrValidation)

	list, err := repo.List(ctx, model.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTodoRepo_GetByID(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTodoRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.NewTodo{Title: "Task"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	missing, err := repo.GetByID(ctx, 99999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTodoRepo_UpdateTriState(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTodoRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.NewTodo{
		Title: "Task",
		Description: strPtr("desc"),
	})
	require.NoError(t, err)

	// description отсутствует - не меняется
	updated, err := repo.Update(ctx, created.ID, model.UpdateTodo{
		Completed: model.Some(true),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "desc", *updated.Description)
	assert.True(t, updated.Completed)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	// description = null - очищается
	updated, err = repo.Update(ctx, created.ID, model.UpdateTodo{
		Description: model.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)

	// description = значение - перезаписывается
	updated, err = repo.Update(ctx, created.ID, model.UpdateTodo{
		Description: model.Some("X"),
		DueDate: model.Some(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "X", *updated.Description)
	require.NotNil(t, updated.DueDate)
}

func TestTodoRepo_UpdateMissing(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTodoRepo(pool)

	updated, err := repo.Update(context.Background(), 99999, model.UpdateTodo{
		Title: model.Some("x"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestTodoRepo_Delete(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTodoRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.NewTodo{Title: "To delete"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTodoRepo_ListOrderAndClamp(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTodoRepo(pool)
	ctx := context.Background()

	// одинаковый created_at у всех строк - порядок держится на id DESC
	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, model.NewTodo{Title: fmt.Sprintf("Task %d", i)})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, model.ListQuery{})
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		ordered := prev.CreatedAt.After(cur.CreatedAt) ||
			(prev.CreatedAt.Equal(cur.CreatedAt) && prev.ID > cur.ID)
		assert.True(t, ordered)
	}

	clamped, err := repo.List(ctx, model.ListQuery{Limit: limPtr(500), Offset: limPtr(-10)})
	require.NoError(t, err)
	assert.Len(t, clamped, 5)

	page, err := repo.List(ctx, model.ListQuery{Limit: limPtr(2), Offset: limPtr(4)})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
