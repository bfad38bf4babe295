package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the parent of every client-side validation error;
// check it with errors.Is to map to 400.
var ErrInvalidInput = errors.New("invalid input")

// Todo errors.
var (
	ErrContentRequired = fmt.Errorf("%w: content is required", ErrInvalidInput)
	ErrTodoIDRequired  = fmt.Errorf("%w: todoId is required", ErrInvalidInput)
	ErrIsDoneRequired  = fmt.Errorf("%w: isDone is required", ErrInvalidInput)
	// ErrTodoNotFound covers both unknown ids and todos owned by someone else.
	ErrTodoNotFound = errors.New("todo not found")
)

// Auth errors.
var (
	ErrEmailRequired    = fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	ErrUsernameRequired = fmt.Errorf("%w: username is required", ErrInvalidInput)
	ErrWeakPassword     = fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	ErrEmailTaken       = fmt.Errorf("%w: email already registered", ErrInvalidInput)

	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
)

// Activity errors.
var ErrInvalidTimeRange = fmt.Errorf("%w: from must be <= to", ErrInvalidInput)
