package service

import "time"

type SignUpInput struct {
	Email           string
	Username        string
	Password        string
	PasswordConfirm string
}

// UpdateTodoInput mirrors the PATCH body. IsDone is required; a nil Content
// leaves the stored content untouched.
type UpdateTodoInput struct {
	TodoID  string
	IsDone  *bool
	Content *string
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "SIGN_UP", "SIGN_IN", "TODO_CREATED", "TODO_UPDATED", "TODO_DELETED"
}
