package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTask(t *testing.T) *Task {
	t.Helper()
	task, err := NewTask("t", "d", "2026-09-15", "Low", "Pending")
	require.NoError(t, err)
	return task
}

func TestApplyFields(t *testing.T) {
	task := newTestTask(t)

	applied, err := task.ApplyFields(FieldMap{
		FieldStatus: "completed",
		FieldTitle:  "renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, task.Status())
	assert.Equal(t, "renamed", task.Title())
	assert.Equal(t, FieldMap{
		FieldStatus: StatusCompleted,
		FieldTitle:  "renamed",
	}, applied)
}

func TestApplyFieldsReturnsNormalizedValues(t *testing.T) {
	task := newTestTask(t)

	applied, err := task.ApplyFields(FieldMap{
		FieldStatus:   "in PROGRESS",
		FieldPriority: "HIGH",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, applied[FieldStatus])
	assert.Equal(t, PriorityHigh, applied[FieldPriority])
}

func TestApplyFieldsIgnoresUnrecognizedNames(t *testing.T) {
	task := newTestTask(t)

	applied, err := task.ApplyFields(FieldMap{
		FieldStatus:   "Completed",
		"bogus_field": "x",
		"task_id":     "99", // immutable fields are not update targets either
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, task.Status())
	assert.EqualValues(t, 0, task.ID())
	assert.Equal(t, "x", applied["bogus_field"], "unrecognized keys pass through")
	assert.Equal(t, "99", applied["task_id"])
}

func TestApplyFieldsValidatesBeforeAssigning(t *testing.T) {
	task := newTestTask(t)

	_, err := task.ApplyFields(FieldMap{
		FieldTitle:    "should not stick",
		FieldPriority: "urgent",
	})
	assert.ErrorIs(t, err, ErrPriorityInvalid)
	assert.Equal(t, "t", task.Title(), "a failed update leaves every field untouched")
	assert.Equal(t, PriorityLow, task.Priority())
}

func TestApplyFieldsRejectsNonStringValues(t *testing.T) {
	task := newTestTask(t)

	_, err := task.ApplyFields(FieldMap{FieldTitle: 42})
	assert.ErrorIs(t, err, ErrFieldNotString)
	assert.Equal(t, "t", task.Title())
}

func TestApplyFieldsEmptyMapIsNoOp(t *testing.T) {
	task := newTestTask(t)
	applied, err := task.ApplyFields(FieldMap{})
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.Equal(t, "t", task.Title())
}
