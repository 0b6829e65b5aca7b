package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTaskName(t *testing.T) {
	tv := NewTaskValidator()

	tests := []struct {
		name        string
		taskName    string
		expectError bool
	}{
		{"valid name", "buy milk", false},
		{"minimum length name", "x", false},
		{"name at maximum length", strings.Repeat("a", 255), false},
		{"empty name", "", true},
		{"whitespace-only name", "   ", true},
		{"name over maximum length", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tv.ValidateTaskName(tt.taskName)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetValidTaskName(t *testing.T) {
	tv := NewTaskValidator()

	t.Run("returns trimmed name", func(t *testing.T) {
		name, err := tv.GetValidTaskName("  buy milk  ")
		require.NoError(t, err)
		assert.Equal(t, "buy milk", name)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := tv.GetValidTaskName("   ")
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, validationErr.GetUserFriendlyMessage(), "required")
	})
}

func TestValidationErrorMessages(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("task name")
	ve.AddInvalidLengthError("task name", "x", 1, 255)

	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Error(), "multiple validation errors")
	assert.Contains(t, ve.GetUserFriendlyMessage(), "task name is required")
}
