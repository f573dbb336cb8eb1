package types

import "errors"

// Validation errors. Raised by NewTask and by the field setters; a setter
// that returns one of these leaves the task unchanged.
var (
	ErrTitleEmpty       = errors.New("title cannot be empty")
	ErrDescriptionEmpty = errors.New("description cannot be empty")
	ErrDueDateEmpty     = errors.New("due date cannot be empty")
	ErrDueDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPriorityInvalid  = errors.New("priority must be Low, Medium, or High")
	ErrStatusInvalid    = errors.New("status must be Pending, In progress, or Completed")
	ErrIDInvalid        = errors.New("task ID must be a positive integer")
	ErrIDAssigned       = errors.New("task ID is already assigned")
	ErrFieldNotString   = errors.New("field value must be a string")
)

// Lookup errors.
var (
	ErrNotFound = errors.New("task not found")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)
