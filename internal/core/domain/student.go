package domain

import (
	"errors"
	"time"
)

var ErrStudentNotFound = errors.New("student not found")
var ErrStudentExists = errors.New("student already exists")

// Student is an enrolled learner. ID is an opaque identity string assigned at
// creation; uniqueness of ID and Username is enforced by the storage layer.
type Student struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Name         string    `json:"name" bson:"name"`
	CreatedAt    time.Time `json:"created_at" bson:"-"`
}
