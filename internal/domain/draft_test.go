package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyDraft(t *testing.T) {
	draft := EmptyDraft()

	for field, value := range draft.Values() {
		if field == FieldSchedule {
			assert.Equal(t, string(ScheduleNow), value)
			continue
		}
		assert.Empty(t, value, "field %s", field)
	}
}

func TestTransferDraft_SetAndGet(t *testing.T) {
	draft := EmptyDraft()

	for field := range draft.Values() {
		value := "value-" + string(field)
		if field == FieldSchedule {
			value = string(ScheduleLater)
		}

		require.NoError(t, draft.Set(field, value))
		got, err := draft.Get(field)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	}
}

func TestTransferDraft_SetUnknownField(t *testing.T) {
	draft := EmptyDraft()

	err := draft.Set(Field("pin"), "1234")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = draft.Get(Field("pin"))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestTransferDraft_SetInvalidSchedule(t *testing.T) {
	draft := EmptyDraft()

	err := draft.Set(FieldSchedule, "tomorrow")

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, FieldSchedule, validationErr.Field)
	assert.Equal(t, ScheduleNow, draft.Schedule, "draft must be unchanged")
}
