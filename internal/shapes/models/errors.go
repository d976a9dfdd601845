package models

import (
	"errors"
	"fmt"
)

// ============================================================
// Operation errors
// ============================================================

type ErrorKind string

const (
	UnknownShapeKind   ErrorKind = "unknown_shape_kind"
	FieldError         ErrorKind = "field_error"
	UnknownScheme      ErrorKind = "unknown_scheme"
	UnknownStyle       ErrorKind = "unknown_style"
	UnknownArrangement ErrorKind = "unknown_arrangement"
	UnknownPattern     ErrorKind = "unknown_pattern"
	UnknownIcon        ErrorKind = "unknown_icon"
	InvalidFilter      ErrorKind = "invalid_filter"
	IndexOutOfRange    ErrorKind = "index_out_of_range"
)

// Error — ошибка операции над фигурами с машинно-читаемым типом.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError создает ошибку операции заданного типа.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf возвращает тип ошибки операции или пустую строку.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
