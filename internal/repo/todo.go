package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")
)

const todoColumns = "id, title, description, completed, due_date, created_at, updated_at"

type TodoRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
}

func NewTodoRepo(pool *pgxpool.Pool) *TodoRepo { // Конструктор
	return &TodoRepo{
		pool: pool,
	}
}

func (r *TodoRepo) Create(ctx context.Context, n model.NewTodo) (model.Todo, error) {
	var t model.Todo
	if err := ValidateNew(n); err != nil {
		return t, err
	}

	title := strings.TrimSpace(n.Title)
	desc := n.Description
	if desc != nil {
		trimmed := strings.TrimSpace(*desc)
		desc = &trimmed
	}

	// created_at и updated_at получают одно и то же now()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO todos (title, description, completed, due_date, created_at, updated_at)
		VALUES ($1, $2, FALSE, $3, now(), now())
		RETURNING `+todoColumns+`
	`, title, desc, n.DueDate).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, r.mapError(err)
}

func (r *TodoRepo) GetByID(ctx context.Context, id int64) (*model.Todo, error) {
	var t model.Todo
	err := r.pool.QueryRow(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1
	`, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TodoRepo) List(ctx context.Context, q model.ListQuery) ([]model.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE ($1::boolean IS NULL OR completed = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	limit := q.LimitOrDefault()
	rows, err := r.pool.Query(ctx, query, q.Completed, limit, q.OffsetOrDefault())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]model.Todo, 0, limit)
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepo) Update(ctx context.Context, id int64, up model.UpdateTodo) (*model.Todo, error) {
	if err := ValidateUpdate(up); err != nil {
		return nil, err
	}

	// SET собирается только из присутствующих полей; updated_at
	// обновляется всегда. Один UPDATE - один атомарный оператор,
	// исчезнувшая строка дает ErrNoRows, а не частичную запись.
	set := []string{"updated_at = now()"}
	args := []any{id}

	if up.Title.Set {
		args = append(args, strings.TrimSpace(up.Title.Value))
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if up.Description.Set {
		if up.Description.Valid {
			args = append(args, strings.TrimSpace(up.Description.Value))
			set = append(set, fmt.Sprintf("description = $%d", len(args)))
		} else {
			set = append(set, "description = NULL")
		}
	}
	if up.Completed.Set {
		args = append(args, up.Completed.Value)
		set = append(set, fmt.Sprintf("completed = $%d", len(args)))
	}
	if up.DueDate.Set {
		if up.DueDate.Valid {
			args = append(args, up.DueDate.Value)
			set = append(set, fmt.Sprintf("due_date = $%d", len(args)))
		} else {
			set = append(set, "due_date = NULL")
		}
	}

	query := `
		UPDATE todos
		SET ` + strings.Join(set, ", ") + `
		WHERE id = $1
		RETURNING ` + todoColumns

	var t model.Todo
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, r.mapError(err)
	}
	return &t, nil
}

func (r *TodoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *TodoRepo) mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return ErrorConflict
		}
	}
	return err
}
