package models

import "time"

// Todo is a user-owned task record.
type Todo struct {
	ID        string    `json:"_id" bson:"_id"`
	Content   string    `json:"content" bson:"content"`
	IsDone    bool      `json:"isDone" bson:"is_done"`
	UserID    string    `json:"userId" bson:"user_id"` // owner
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// TodoStats summarizes a user's todo list.
type TodoStats struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Pending int `json:"pending"`
}
