package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("model: id not found")
	ErrDuplicateID      = errors.New("model: duplicate id")
	ErrConflict         = errors.New("model: schedule conflict")
	ErrExhaustedRetries = errors.New("model: exhausted retries")
	ErrInvalid          = errors.New("model: invalid entity")
)

type NotFoundError struct {
	Kind Kind
	ID   uint64
}

func (err NotFoundError) Error() string {
	if err.Kind == "" {
		return fmt.Sprintf("id %d not found", err.ID)
	}
	return fmt.Sprintf("%v with id %d not found", err.Kind, err.ID)
}

func (err NotFoundError) Unwrap() error {
	return ErrNotFound
}

type DuplicateIDError struct {
	ID uint64
}

func (err DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate id %d", err.ID)
}

func (err DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}

// ConflictError reports the entity whose placement was rejected and the ids it collides with
type ConflictError struct {
	Kind Kind
	ID   uint64
	With []uint64
}

func (err ConflictError) Error() string {
	return fmt.Sprintf("%v %d conflicts with %v", err.Kind, err.ID, err.With)
}

func (err ConflictError) Unwrap() error {
	return ErrConflict
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
