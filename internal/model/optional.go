package model

import (
	"bytes"
	"encoding/json"
)

// Optional различает три состояния поля в JSON:
//   - ключ отсутствует: Set=false
//   - ключ = null: Set=true, Valid=false
//   - ключ = значение: Set=true, Valid=true
//
// Обычный *T склеивает первые два случая, и "очистить поле"
// становится неотличимо от "не трогать".
type Optional[T any] struct {
	Set bool
	Valid bool
	Value T
}

// Some возвращает установленное значение
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null возвращает явный null (очистку поля)
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON вызывается encoding/json только если ключ присутствует,
// поэтому сам факт вызова означает Set=true.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr возвращает *T для передачи в запрос: nil для null
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
