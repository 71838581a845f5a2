package repo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// MemoryTodoRepo - реализация TodoRepository в памяти под мьютексом.
// Контракт тот же, что у TodoRepo: валидация перед записью, порядок
// created_at DESC / id DESC, id монотонно растут и не переиспользуются
// после удаления.
type MemoryTodoRepo struct {
	mu sync.Mutex
	todos map[int64]model.Todo
	nextID int64
}

func NewMemoryTodoRepo() *MemoryTodoRepo {
	return &MemoryTodoRepo{
		todos: make(map[int64]model.Todo),
		nextID: 1,
	}
}

func (r *MemoryTodoRepo) Create(_ context.Context, n model.NewTodo) (model.Todo, error) {
	if err := ValidateNew(n); err != nil {
		return model.Todo{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t := model.Todo{
		ID: r.nextID,
		Title: strings.TrimSpace(n.Title),
		Completed: false,
		DueDate: n.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if n.Description != nil {
		desc := strings.TrimSpace(*n.Description)
		t.Description = &desc
	}

	r.nextID++
	r.todos[t.ID] = t
	return t, nil
}

func (r *MemoryTodoRepo) GetByID(_ context.Context, id int64) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *MemoryTodoRepo) List(_ context.Context, q model.ListQuery) ([]model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos := make([]model.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		if q.Completed != nil && t.Completed != *q.Completed {
			continue
		}
		todos = append(todos, t)
	}

	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		return todos[i].ID > todos[j].ID
	})

	offset := q.OffsetOrDefault()
	if offset >= len(todos) {
		return []model.Todo{}, nil
	}
	todos = todos[offset:]

	if limit := q.LimitOrDefault(); len(todos) > limit {
		todos = todos[:limit]
	}
	return todos, nil
}

func (r *MemoryTodoRepo) Update(_ context.Context, id int64, up model.UpdateTodo) (*model.Todo, error) {
	if err := ValidateUpdate(up); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok {
		return nil, nil
	}

	if up.Title.Set {
		t.Title = strings.TrimSpace(up.Title.Value)
	}
	if up.Description.Set {
		if up.Description.Valid {
			desc := strings.TrimSpace(up.Description.Value)
			t.Description = &desc
		} else {
			t.Description = nil
		}
	}
	if up.Completed.Set {
		t.Completed = up.Completed.Value
	}
	if up.DueDate.Set {
		t.DueDate = up.DueDate.Ptr()
	}
	t.UpdatedAt = time.Now().UTC()

	r.todos[id] = t
	return &t, nil
}

func (r *MemoryTodoRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return false, nil
	}
	delete(r.todos, id)
	return true, nil
}
