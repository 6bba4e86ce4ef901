// Package apperrors содержит классификацию ошибок, по которой HTTP-слой
// выбирает код ответа. Ошибки хранилища оборачиваются через fmt.Errorf("%w"),
// сравнение - errors.Is / errors.As.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - запись с таким идентификатором не существует
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition - запрошенный статус недостижим из текущего
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoStationFound - справочник участков пуст, SOS некуда маршрутизировать
	ErrNoStationFound = errors.New("no police station found")

	// ErrNoActiveAlert - у гражданина нет активного сигнала бедствия
	ErrNoActiveAlert = errors.New("no active sos alert")

	// ErrConflict - параллельное изменение той же записи, запрос можно повторить
	ErrConflict = errors.New("concurrent modification conflict")
)

// ValidationError - пользовательская ошибка ввода с указанием поля
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation: %s", e.Message)
}

// MissingField возвращает ValidationError об отсутствующем обязательном поле
func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "required field is missing"}
}

// Invalid возвращает ValidationError с произвольным сообщением
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
