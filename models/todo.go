package models

import "time"

// Field limits enforced at validation time, not by the storage tier.
const (
	MaxTaskLength    = 200
	MaxDetailsLength = 500
)

// Todo is the persisted record. The integer primary key is assigned by the
// storage tier on insert and never changes afterwards.
type Todo struct {
	ID        int64     `json:"id" bson:"_id"`
	Task      string    `json:"task" bson:"task"`
	Details   string    `json:"details" bson:"details"`
	Completed bool      `json:"completed" bson:"completed"`
	Created   time.Time `json:"created" bson:"created"`
	Updated   time.Time `json:"updated" bson:"updated"`
}

// TodoRepresentation is the wire form of a Todo. Only task, details and
// completed are exposed; id and the timestamps stay internal.
type TodoRepresentation struct {
	Task      string `json:"task"`
	Details   string `json:"details"`
	Completed bool   `json:"completed"`
}

// TodoInput is the request body for create and update. Pointer fields
// distinguish an absent key from a zero value so partial updates only
// touch what the client actually sent.
type TodoInput struct {
	Task      *string `json:"task"`
	Details   *string `json:"details"`
	Completed *bool   `json:"completed"`
}
