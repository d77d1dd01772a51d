package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medibook/internal/domains/booking/model"
	"medibook/shared/failure"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    model.Status
		to      model.Status
		allowed bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, allowed: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, allowed: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, allowed: true},
		{name: "confirmed to checked", from: model.StatusConfirmed, to: model.StatusChecked, allowed: true},
		{name: "confirmed to completed", from: model.StatusConfirmed, to: model.StatusCompleted, allowed: true},
		{name: "checked to completed", from: model.StatusChecked, to: model.StatusCompleted, allowed: true},
		{name: "pending to checked", from: model.StatusPending, to: model.StatusChecked, allowed: false},
		{name: "pending to completed", from: model.StatusPending, to: model.StatusCompleted, allowed: false},
		{name: "cancelled to cancelled", from: model.StatusCancelled, to: model.StatusCancelled, allowed: false},
		{name: "cancelled to confirmed", from: model.StatusCancelled, to: model.StatusConfirmed, allowed: false},
		{name: "cancelled to pending", from: model.StatusCancelled, to: model.StatusPending, allowed: false},
		{name: "completed to cancelled", from: model.StatusCompleted, to: model.StatusCancelled, allowed: false},
		{name: "completed to checked", from: model.StatusCompleted, to: model.StatusChecked, allowed: false},
		{name: "checked to cancelled", from: model.StatusChecked, to: model.StatusCancelled, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))

			err := model.Transition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, failure.KindInvalidStateTransition, failure.GetKind(err))
			}
		})
	}
}

func TestTransition_TerminalStatesAreClosed(t *testing.T) {
	all := []model.Status{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusCancelled,
		model.StatusCompleted,
		model.StatusChecked,
	}

	for _, terminal := range []model.Status{model.StatusCancelled, model.StatusCompleted} {
		assert.True(t, terminal.IsTerminal())

		for _, to := range all {
			err := model.Transition(terminal, to)
			assert.Error(t, err, "expected %s -> %s to be rejected", terminal, to)
			assert.Equal(t, failure.KindInvalidStateTransition, failure.GetKind(err))
		}
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	err := model.Transition(model.Status("unknown"), model.StatusConfirmed)
	assert.Error(t, err)

	err = model.Transition(model.StatusPending, model.Status("unknown"))
	assert.Error(t, err)
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, model.StatusPending.IsActive())
	assert.True(t, model.StatusConfirmed.IsActive())
	assert.False(t, model.StatusCancelled.IsActive())
	assert.False(t, model.StatusCompleted.IsActive())
	assert.False(t, model.StatusChecked.IsActive())
}

func TestActiveStatusStrings(t *testing.T) {
	assert.Equal(t, []string{"pending", "confirmed"}, model.ActiveStatusStrings())
}
