package model

import "time"

type Todo struct {
	ID int64 `json:"id"`
	Title string `json:"title"`
	Description *string `json:"description"`
	Completed bool `json:"completed"`
	DueDate *time.Time `json:"due_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTodo - тело запроса на создание
type NewTodo struct {
	Title string `json:"title"`
	Description *string `json:"description"`
	DueDate *time.Time `json:"due_date"`
}

// UpdateTodo - тело запроса на частичное обновление.
// Поля description и due_date различают три состояния:
// ключ отсутствует / ключ = null / ключ = значение (см. Optional).
type UpdateTodo struct {
	Title Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Completed Optional[bool] `json:"completed"`
	DueDate Optional[time.Time] `json:"due_date"`
}

// ListQuery - параметры фильтрации и пагинации списка
type ListQuery struct {
	Limit *int `json:"limit"`
	Offset *int `json:"offset"`
	Completed *bool `json:"completed"`
}

const (
	DefaultLimit = 50
	MaxLimit = 200
)

// LimitOrDefault возвращает limit с дефолтом 50 и границами [1, 200]
func (q ListQuery) LimitOrDefault() int {
	if q.Limit == nil {
		return DefaultLimit
	}
	l := *q.Limit
	if l < 1 {
		return 1
	}
	if l > MaxLimit {
		return MaxLimit
	}
	return l
}

// OffsetOrDefault возвращает offset с дефолтом 0, отрицательные обрезаются
func (q ListQuery) OffsetOrDefault() int {
	if q.Offset == nil || *q.Offset < 0 {
		return 0
	}
	return *q.Offset
}
