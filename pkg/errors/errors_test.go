package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorFormatsLineMetadata(t *testing.T) {
	underlying := fmt.Errorf("unexpected mapping")

	err := NewParseError("macros.yaml", 12, underlying)
	require.EqualError(t, err, "parse error: macros.yaml:12: unexpected mapping")
	require.ErrorIs(t, err, underlying)

	err = NewParseError("macros.yaml", 0, underlying)
	require.EqualError(t, err, "parse error: macros.yaml: unexpected mapping")
}

func TestValidationErrorFormatsField(t *testing.T) {
	err := NewValidationError("macro.schedule_time", `"25:00" is not a valid HH:MM time`, nil)
	require.EqualError(t, err, `validation error: macro.schedule_time: "25:00" is not a valid HH:MM time`)

	err = NewValidationError("", "configuration is nil", nil)
	require.EqualError(t, err, "validation error: configuration is nil")
}

func TestStepErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("no step type registered")

	err := NewStepError("teleport", cause)
	require.EqualError(t, err, "step error [teleport]: no step type registered")
	require.ErrorIs(t, err, cause)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, "teleport", stepErr.StepType)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("action", "morning-routine")
	require.EqualError(t, err, "unknown action: morning-routine")

	var nfe *NotFoundError
	require.True(t, errors.As(err, &nfe))
	require.Equal(t, "action", nfe.Kind)
}
