package models

import "time"

// Activity event types.
const (
	ActivitySignUp      = "SIGN_UP"
	ActivitySignIn      = "SIGN_IN"
	ActivityTodoCreated = "TODO_CREATED"
	ActivityTodoUpdated = "TODO_UPDATED"
	ActivityTodoDeleted = "TODO_DELETED"
)

// ActivityEvent is a single audit entry for one user action.
type ActivityEvent struct {
	EventID     string    `json:"event_id" bson:"_id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	OccurredAt  time.Time `json:"occurred_at" bson:"occurred_at"`
	Type        string    `json:"type" bson:"type"`               // SIGN_UP | SIGN_IN | TODO_CREATED | TODO_UPDATED | TODO_DELETED
	Description string    `json:"description" bson:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty" bson:"metadata,omitempty"`
}
