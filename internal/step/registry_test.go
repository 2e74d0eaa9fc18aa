package step

import (
	"testing"

	"github.com/stretchr/testify/require"

	deskerrors "github.com/alexisbeaulieu97/deskpilot/pkg/errors"
)

func TestNewRejectsUnknownType(t *testing.T) {
	RegisterDefaults()

	_, err := New("teleport", nil)
	require.Error(t, err)

	var stepErr *deskerrors.StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, "teleport", stepErr.StepType)
}

func TestNewRejectsUncoercibleParams(t *testing.T) {
	RegisterDefaults()

	_, err := New(TypeDelay, map[string]any{"seconds": "soon"})
	require.Error(t, err)

	var stepErr *deskerrors.StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, TypeDelay, stepErr.StepType)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	RegisterDefaults()

	err := Register(TypeDelay, newDelay)
	require.Error(t, err)
}

func TestRegisterDefaultsIsIdempotent(t *testing.T) {
	RegisterDefaults()
	before := len(Types())

	RegisterDefaults()
	require.Len(t, Types(), before)
}

func TestBuildAppliesFactoryDefaults(t *testing.T) {
	RegisterDefaults()

	tests := []struct {
		stepType string
		params   map[string]any
		verify   func(t *testing.T, s Step)
	}{
		{TypeWait, nil, func(t *testing.T, s Step) {
			require.Equal(t, 250, s.(*WaitStep).MS)
		}},
		{TypeDelay, nil, func(t *testing.T, s Step) {
			require.Equal(t, 1, s.(*DelayStep).Seconds)
		}},
		{TypeLaunchProfile, map[string]any{"profile": "work"}, func(t *testing.T, s Step) {
			lp := s.(*LaunchProfileStep)
			require.Equal(t, "work", lp.Profile)
			require.Equal(t, 300, lp.DelayMS)
		}},
		{TypeRenderTemplate, map[string]any{"template_id": "followup"}, func(t *testing.T, s Step) {
			rt := s.(*RenderTemplateStep)
			require.Equal(t, "rendered_text", rt.OutputKey)
		}},
		{TypeClick, map[string]any{"x": 10, "y": 20}, func(t *testing.T, s Step) {
			c := s.(*ClickStep)
			require.Equal(t, "left", c.Button)
			require.Equal(t, 1, c.Clicks)
			require.InDelta(t, 0.1, c.Interval, 1e-9)
		}},
		{TypeJiggle, nil, func(t *testing.T, s Step) {
			j := s.(*JiggleStep)
			require.Equal(t, 60, j.Duration)
			require.Equal(t, PatternNatural, j.Pattern)
			require.Equal(t, 30, j.Interval)
			require.True(t, j.TrackMouse)
		}},
		{TypeFocusApp, map[string]any{"title": "Notes"}, func(t *testing.T, s Step) {
			require.Equal(t, OnFailWarn, s.(*FocusAppStep).OnFail)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.stepType, func(t *testing.T) {
			s, err := New(tt.stepType, tt.params)
			require.NoError(t, err)
			require.Equal(t, tt.stepType, s.Type())
			tt.verify(t, s)
		})
	}
}

func TestHotkeyBuilderSplitsStringKeys(t *testing.T) {
	RegisterDefaults()

	s, err := New(TypeHotkey, map[string]any{"keys": "ctrl+shift+p"})
	require.NoError(t, err)
	require.Equal(t, []string{"ctrl", "shift", "p"}, s.(*HotkeyStep).Keys)

	s, err = New(TypeHotkey, map[string]any{"keys": []any{"alt", "f4"}})
	require.NoError(t, err)
	require.Equal(t, []string{"alt", "f4"}, s.(*HotkeyStep).Keys)
}

func TestTypesAreSorted(t *testing.T) {
	RegisterDefaults()

	types := Types()
	require.Contains(t, types, TypeWait)
	require.Contains(t, types, TypeJiggle)
	require.IsIncreasing(t, types)
}
