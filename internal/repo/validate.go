package repo

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

var ErrValidation = errors.New("validation error")

const (
	maxTitleLen = 200 // в символах, не байтах
	maxDescriptionLen = 2000
)

// ValidateNew проверяет тело создания перед записью в хранилище
func ValidateNew(n model.NewTodo) error {
	if err := validateTitle(n.Title); err != nil {
		return err
	}
	if n.Description != nil && utf8.RuneCountInString(*n.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", ErrValidation, maxDescriptionLen)
	}
	return nil
}

// ValidateUpdate проверяет только присутствующие поля.
// Явный null для description тривиально валиден, для title и completed - запрещен.
func ValidateUpdate(up model.UpdateTodo) error {
	if up.Title.Set {
		if !up.Title.Valid {
			return fmt.Errorf("%w: title cannot be null", ErrValidation)
		}
		if err := validateTitle(up.Title.Value); err != nil {
			return err
		}
	}
	if up.Completed.Set && !up.Completed.Valid {
		return fmt.Errorf("%w: completed cannot be null", ErrValidation)
	}
	if up.Description.Set && up.Description.Valid &&
		utf8.RuneCountInString(up.Description.Value) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", ErrValidation, maxDescriptionLen)
	}
	return nil
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n == 0 || n > maxTitleLen {
		return fmt.Errorf("%w: title must be 1..%d characters", ErrValidation, maxTitleLen)
	}
	return nil
}
