// Package utils holds small shared helpers with no domain logic.
package utils

import "github.com/google/uuid"

// TaskIDGenerator produces client-generated export task identifiers: random
// (version 4) UUIDs, globally unique with overwhelming probability, so no
// server-side allocator or coordination state is needed.
type TaskIDGenerator struct {
}

func NewTaskIDGenerator() *TaskIDGenerator {
	return &TaskIDGenerator{}
}

// Generate returns a fresh task identifier. The identifier must be generated
// before the create call and reused verbatim for every status poll that
// references the task.
func (g *TaskIDGenerator) Generate() string {
	v4, err := uuid.NewRandom()
	if err != nil {
		return uuid.NewString()
	}

	return v4.String()
}
