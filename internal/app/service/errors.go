package service

import "fmt"

// ValidationError - некорректное поле запроса или идентификатор.
// Слой API отдает на нее 400, на ds.ErrShipNotFound - 404.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
