package model

import "fmt"

// EntityNotFoundError is returned whenever a referenced User or Chat id has
// no matching row. Handlers render it as a structured 404.
type EntityNotFoundError struct {
	EntityName string
	EntityID   uint
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.EntityName, e.EntityID)
}

// DuplicateEntityError is returned when a create or update would violate a
// uniqueness constraint. EntityID holds the duplicate value.
type DuplicateEntityError struct {
	EntityName string
	EntityID   string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.EntityName, e.EntityID)
}
