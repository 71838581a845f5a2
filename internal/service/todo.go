package service

import (
	"context"
	"strings"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

// TodoService - тонкий слой оркестрации над репозиторием: нормализация
// ввода и превращение "пустого результата" в ErrorNotFound. Собственного
// состояния не держит и безопасен для конкурентных запросов.
type TodoService struct {
	repo repo.TodoRepository
}

func NewTodoService(repo repo.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, n model.NewTodo) (model.Todo, error) {
	// Репозиторий тоже обрезает пробелы, повторный trim ничего не меняет
	n.Title = strings.TrimSpace(n.Title)
	if n.Description != nil {
		desc := strings.TrimSpace(*n.Description)
		n.Description = &desc
	}
	return s.repo.Create(ctx, n)
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (model.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	if t == nil {
		return model.Todo{}, repo.ErrorNotFound
	}
	return *t, nil
}

func (s *TodoService) List(ctx context.Context, q model.ListQuery) ([]model.Todo, error) {
	return s.repo.List(ctx, q)
}

func (s *TodoService) Update(ctx context.Context, id int64, up model.UpdateTodo) (model.Todo, error) {
	// Trim только присутствующих и не-null полей, тройное состояние сохраняется
	if up.Title.Set && up.Title.Valid {
		up.Title.Value = strings.TrimSpace(up.Title.Value)
	}
	if up.Description.Set && up.Description.Valid {
		up.Description.Value = strings.TrimSpace(up.Description.Value)
	}

	t, err := s.repo.Update(ctx, id, up)
	if err != nil {
		return model.Todo{}, err
	}
	if t == nil {
		return model.Todo{}, repo.ErrorNotFound
	}
	return *t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return repo.ErrorNotFound
	}
	return nil
}
