package types

import (
	"fmt"
	"strings"
	"time"
)

// DueDateLayout is the calendar-date form all due dates must parse as.
const DueDateLayout = "2006-01-02"

// Canonical priority values. Input is matched case-insensitively and
// normalized to these forms.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Canonical status values. "In progress" keeps the lowercase "p"; it is the
// capitalized form of the stored enum value.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In progress"
	StatusCompleted  = "Completed"
)

// validPriorities and validStatuses are keyed by the lowercased value.
var validPriorities = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

var validStatuses = map[string]bool{
	"pending":     true,
	"in progress": true,
	"completed":   true,
}

// Task is a validated task record. All fields are unexported so a Task can
// never be observed in an invalid state; mutation goes through the setters,
// each applying the same rule as the constructor.
//
// A task starts without an ID; persistence assigns one via SetID, after
// which the ID is immutable.
type Task struct {
	id          int64
	title       string
	description string
	dueDate     string
	priority    string
	status      string
	createdAt   time.Time
}

// NewTask constructs a validated Task with no ID and CreatedAt stamped now.
// An empty status defaults to Pending. Returns the first validation error
// encountered.
func NewTask(title, description, dueDate, priority, status string) (*Task, error) {
	if strings.TrimSpace(status) == "" {
		status = StatusPending
	}

	t := &Task{createdAt: time.Now()}
	if err := t.SetTitle(title); err != nil {
		return nil, err
	}
	if err := t.SetDescription(description); err != nil {
		return nil, err
	}
	if err := t.SetDueDate(dueDate); err != nil {
		return nil, err
	}
	if err := t.SetPriority(priority); err != nil {
		return nil, err
	}
	if err := t.SetStatus(status); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTaskFromFields reconstructs a persisted Task from a field-map, as
// returned by Repository.FetchAll or FetchOne. The map must carry a positive
// task_id. Date and timestamp values are tolerated either as time.Time or as
// already-formatted strings.
func NewTaskFromFields(fields FieldMap) (*Task, error) {
	dueDate, err := fieldDate(fields, FieldDueDate)
	if err != nil {
		return nil, err
	}

	t, err := NewTask(
		fieldString(fields, FieldTitle),
		fieldString(fields, FieldDescription),
		dueDate,
		fieldString(fields, FieldPriority),
		fieldString(fields, FieldStatus),
	)
	if err != nil {
		return nil, err
	}

	if err := t.SetID(fieldID(fields)); err != nil {
		return nil, err
	}

	createdAt, err := fieldTimestamp(fields, FieldCreatedAt)
	if err != nil {
		return nil, err
	}
	if !createdAt.IsZero() {
		t.createdAt = createdAt
	}
	return t, nil
}

// ID returns the task ID, or 0 when the task has not been persisted.
func (t *Task) ID() int64 { return t.id }

// Title returns the task title.
func (t *Task) Title() string { return t.title }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// DueDate returns the due date in YYYY-MM-DD form.
func (t *Task) DueDate() string { return t.dueDate }

// Priority returns the canonical priority value.
func (t *Task) Priority() string { return t.priority }

// Status returns the canonical status value.
func (t *Task) Status() string { return t.status }

// CreatedAt returns the creation timestamp, set once at construction.
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// SetID assigns the storage-issued ID. Returns ErrIDInvalid for
// non-positive values and ErrIDAssigned if the task already has an ID.
func (t *Task) SetID(id int64) error {
	if id <= 0 {
		return ErrIDInvalid
	}
	if t.id != 0 {
		return ErrIDAssigned
	}
	t.id = id
	return nil
}

// SetTitle sets the title. Returns ErrTitleEmpty for blank input.
func (t *Task) SetTitle(title string) error {
	v, err := normalizeTitle(title)
	if err != nil {
		return err
	}
	t.title = v
	return nil
}

// SetDescription sets the description. Returns ErrDescriptionEmpty for
// blank input.
func (t *Task) SetDescription(description string) error {
	v, err := normalizeDescription(description)
	if err != nil {
		return err
	}
	t.description = v
	return nil
}

// SetDueDate sets the due date. The value must be a real calendar date in
// YYYY-MM-DD form.
func (t *Task) SetDueDate(dueDate string) error {
	v, err := normalizeDueDate(dueDate)
	if err != nil {
		return err
	}
	t.dueDate = v
	return nil
}

// SetPriority sets the priority, normalizing case ("LOW" and "low" both
// store as "Low"). Returns ErrPriorityInvalid for unrecognized values.
func (t *Task) SetPriority(priority string) error {
	v, err := normalizePriority(priority)
	if err != nil {
		return err
	}
	t.priority = v
	return nil
}

// SetStatus sets the status with the same case normalization as SetPriority.
// Returns ErrStatusInvalid for unrecognized values.
func (t *Task) SetStatus(status string) error {
	v, err := normalizeStatus(status)
	if err != nil {
		return err
	}
	t.status = v
	return nil
}

// Fields returns a snapshot field-map of the task. task_id is present only
// once the task has been persisted; created_at is the raw time.Time.
func (t *Task) Fields() FieldMap {
	fields := FieldMap{
		FieldTitle:       t.title,
		FieldDescription: t.description,
		FieldDueDate:     t.dueDate,
		FieldPriority:    t.priority,
		FieldStatus:      t.status,
		FieldCreatedAt:   t.createdAt,
	}
	if t.id != 0 {
		fields[FieldTaskID] = t.id
	}
	return fields
}

// Equal reports whether two tasks refer to the same persisted record.
// Equality is defined solely by ID; tasks that have not been persisted are
// never equal, not even to themselves.
func (t *Task) Equal(other *Task) bool {
	if other == nil {
		return false
	}
	return t.id != 0 && t.id == other.id
}

// String returns a short human-readable summary.
func (t *Task) String() string {
	return fmt.Sprintf("Task(ID=%d, Title=%q, Priority=%s, Status=%s, Due=%s)",
		t.id, t.title, t.priority, t.status, t.dueDate)
}

// capitalize lowercases the value and upper-cases the first letter,
// producing the canonical form of an enumerated value.
func capitalize(v string) string {
	v = strings.ToLower(v)
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}

func normalizeTitle(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", ErrTitleEmpty
	}
	return v, nil
}

func normalizeDescription(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", ErrDescriptionEmpty
	}
	return v, nil
}

func normalizeDueDate(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", ErrDueDateEmpty
	}
	if _, err := time.Parse(DueDateLayout, v); err != nil {
		return "", ErrDueDateFormat
	}
	return v, nil
}

func normalizePriority(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !validPriorities[strings.ToLower(v)] {
		return "", ErrPriorityInvalid
	}
	return capitalize(v), nil
}

func normalizeStatus(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !validStatuses[strings.ToLower(v)] {
		return "", ErrStatusInvalid
	}
	return capitalize(v), nil
}
