package models

import "time"

type User struct {
	ID           string    `json:"_id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"` // don’t expose hash
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}
