package model

import "time"

const (
	EntityName = "todo"

	// KeyPrefix namespaces every primary record key; ListKey is the single
	// well-known key holding the ordered sequence of todo ids.
	KeyPrefix = "todo:"
	ListKey   = "todos:list"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Todo is the full persisted record. It is self-contained: the serialized
// value under the primary key carries the id and both timestamps.
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	Done        bool      `json:"done"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Fields is the caller-supplied portion of a todo at creation time. The id
// and both timestamps are assigned by the repository.
type Fields struct {
	Title       string
	Description string
	Completed   bool
	Done        bool
	Priority    Priority
}

// Patch is a sparse field set for partial updates. A nil pointer means the
// field was not supplied and must be left untouched; there is no way to
// clear a field by sending an explicit null.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
	Done        *bool
	Priority    *Priority
}

// Key returns the primary record key for the given todo id.
func Key(id string) string {
	return KeyPrefix + id
}
