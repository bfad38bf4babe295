package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todo_backend/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Storage-level sentinel errors shared by the sqlite and mongo backends.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Authorization interface {
	Create(ctx context.Context, u models.User) error
	// GetByEmail returns (nil, nil) when no user has that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID returns (nil, nil) when the user does not exist.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// TodoPatch carries the mutable todo fields. A nil Content leaves the content unchanged.
type TodoPatch struct {
	IsDone    bool
	Content   *string
	UpdatedAt time.Time
}

// TodoRepo scopes every lookup by owner; a todo of another user is ErrNotFound.
type TodoRepo interface {
	Create(ctx context.Context, t models.Todo) error
	Update(ctx context.Context, userID, id string, p TodoPatch) (models.Todo, error)
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.Todo, error)
	Stats(ctx context.Context, userID string) (models.TodoStats, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, userID string, from, to time.Time, typ string) ([]models.ActivityEvent, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Repository struct {
	Auth      Authorization
	TodoRepo  TodoRepo
	EventRepo EventRepo
}

// NewRepository builds the sqlite-backed repositories.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:      NewUserRepository(db),
		TodoRepo:  NewTodoSQLite(db),
		EventRepo: NewEventSQLite(db),
	}
}

// NewMongoRepository builds the document-store repositories.
func NewMongoRepository(mdb *mongo.Database) *Repository {
	return &Repository{
		Auth:      NewUserMongo(mdb),
		TodoRepo:  NewTodoMongo(mdb),
		EventRepo: NewEventMongo(mdb),
	}
}
