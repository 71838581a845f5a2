package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// TodoRepository определяет интерфейс для работы с задачами.
// Отсутствующая запись - не ошибка: GetByID и Update возвращают nil,
// Delete возвращает false. Считать ли это исключением, решает вызывающий слой.
type TodoRepository interface {
	Create(ctx context.Context, n model.NewTodo) (model.Todo, error)
	GetByID(ctx context.Context, id int64) (*model.Todo, error)
	List(ctx context.Context, q model.ListQuery) ([]model.Todo, error)
	Update(ctx context.Context, id int64, up model.UpdateTodo) (*model.Todo, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
