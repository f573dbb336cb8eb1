// Package types defines the Task entity, the field-map representation used
// across the persistence boundary, the Repository port, and the standard
// errors for the task tracker.
package types
