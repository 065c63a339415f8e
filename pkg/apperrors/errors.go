package apperrors

import "fmt"

// Op identifies which content operation failed.
type Op string

const (
	OpFetch  Op = "fetch"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// EntityError tags a store failure with the operation and the entity
// variant it was performed on. The underlying store error is wrapped and
// reachable through errors.Is/As.
type EntityError struct {
	Op     Op
	Entity string
	Err    error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *EntityError) Unwrap() error { return e.Err }

func FetchFailed(entity string, err error) *EntityError {
	return &EntityError{Op: OpFetch, Entity: entity, Err: err}
}

func CreateFailed(entity string, err error) *EntityError {
	return &EntityError{Op: OpCreate, Entity: entity, Err: err}
}

func UpdateFailed(entity string, err error) *EntityError {
	return &EntityError{Op: OpUpdate, Entity: entity, Err: err}
}

func DeleteFailed(entity string, err error) *EntityError {
	return &EntityError{Op: OpDelete, Entity: entity, Err: err}
}
