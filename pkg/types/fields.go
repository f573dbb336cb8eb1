package types

import (
	"fmt"
	"time"
)

// FieldMap carries task data across the persistence boundary as a mapping
// from column name to value.
type FieldMap map[string]any

// Column names of the tasks table, used as field-map keys.
const (
	FieldTaskID      = "task_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldPriority    = "priority"
	FieldStatus      = "status"
	FieldCreatedAt   = "created_at"
)

// MutableTaskFields lists the field names a partial update may name.
// task_id and created_at are set once and never updated.
var MutableTaskFields = []string{
	FieldTitle,
	FieldDescription,
	FieldDueDate,
	FieldPriority,
	FieldStatus,
}

// fieldRule validates a raw string value and assigns the normalized result
// to a task. The explicit registry replaces dynamic attribute-name lookup:
// a name missing from this map is simply not a task field.
type fieldRule struct {
	normalize func(string) (string, error)
	assign    func(*Task, string)
}

var taskFieldRules = map[string]fieldRule{
	FieldTitle: {
		normalize: normalizeTitle,
		assign:    func(t *Task, v string) { t.title = v },
	},
	FieldDescription: {
		normalize: normalizeDescription,
		assign:    func(t *Task, v string) { t.description = v },
	},
	FieldDueDate: {
		normalize: normalizeDueDate,
		assign:    func(t *Task, v string) { t.dueDate = v },
	},
	FieldPriority: {
		normalize: normalizePriority,
		assign:    func(t *Task, v string) { t.priority = v },
	},
	FieldStatus: {
		normalize: normalizeStatus,
		assign:    func(t *Task, v string) { t.status = v },
	},
}

// ApplyFields applies a partial update to the task. Keys that do not name a
// recognized mutable field are silently ignored. Every recognized value is
// validated before any is assigned, so a validation error leaves the task
// untouched.
//
// The returned map is the update as applied: recognized fields carry their
// normalized values, unrecognized keys pass through unchanged. Persisting
// that map keeps the durable row in the exact form the task now holds.
func (t *Task) ApplyFields(updates FieldMap) (FieldMap, error) {
	applied := make(FieldMap, len(updates))
	for name, raw := range updates {
		rule, ok := taskFieldRules[name]
		if !ok {
			applied[name] = raw
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrFieldNotString)
		}
		v, err := rule.normalize(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		applied[name] = v
	}
	for name, v := range applied {
		if rule, ok := taskFieldRules[name]; ok {
			rule.assign(t, v.(string))
		}
	}
	return applied, nil
}

// fieldString returns the string value for key, or "" when absent.
func fieldString(fields FieldMap, key string) string {
	s, _ := fields[key].(string)
	return s
}

// fieldID returns the task_id value, tolerating the integer types a driver
// or decoder may produce. Returns 0 when absent.
func fieldID(fields FieldMap) int64 {
	switch v := fields[FieldTaskID].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// fieldDate returns a calendar-date string for key. A time.Time value is
// formatted; a timestamp-shaped string is truncated to its date part; a
// plain date string passes through for the setter to validate.
func fieldDate(fields FieldMap, key string) (string, error) {
	switch v := fields[key].(type) {
	case nil:
		return "", nil
	case time.Time:
		return v.Format(DueDateLayout), nil
	case string:
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return ts.Format(DueDateLayout), nil
		}
		return v, nil
	default:
		return "", fmt.Errorf("%s: %w", key, ErrFieldNotString)
	}
}

// timestampLayouts are the textual forms a created_at value may arrive in.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	DueDateLayout,
}

// fieldTimestamp returns the timestamp value for key, tolerating time.Time
// or any of the recognized textual layouts. Returns the zero time when the
// key is absent.
func fieldTimestamp(fields FieldMap, key string) (time.Time, error) {
	switch v := fields[key].(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		if v == "" {
			return time.Time{}, nil
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts, nil
			}
		}
		return time.Time{}, fmt.Errorf("%s: unrecognized timestamp %q", key, v)
	default:
		return time.Time{}, fmt.Errorf("%s: %w", key, ErrFieldNotString)
	}
}
