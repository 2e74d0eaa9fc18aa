package step

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deskpilot/internal/automation"
	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

func TestFocusWindowMatchIsCaseInsensitive(t *testing.T) {
	backend := automation.NewFakeBackend()
	backend.ActiveTitle = "Notes - Standup"
	ctx := newTestContext(backend)
	res := model.NewRunResult()

	(&FocusWindowStep{Title: "notes", OnFail: OnFailFail}).Run(ctx, res)

	require.Equal(t, model.StatusSuccess, res.Status)
	require.Contains(t, res.Logs[0].Message, "Focus OK")
}

func TestFocusWindowMismatchWarnsByDefault(t *testing.T) {
	backend := automation.NewFakeBackend()
	backend.ActiveTitle = "Browser"
	ctx := newTestContext(backend)
	res := model.NewRunResult()

	(&FocusWindowStep{Title: "Notes", OnFail: OnFailWarn}).Run(ctx, res)

	require.Equal(t, model.StatusSuccess, res.Status)
	require.Equal(t, model.LevelWarning, res.Logs[0].Level)
	require.Contains(t, res.Logs[0].Message, "Active window mismatch")
}

func TestFocusWindowMismatchFailsWhenRequested(t *testing.T) {
	backend := automation.NewFakeBackend()
	backend.ActiveTitle = "Browser"
	ctx := newTestContext(backend)
	res := model.NewRunResult()

	(&FocusWindowStep{Title: "Notes", OnFail: OnFailFail}).Run(ctx, res)

	require.Equal(t, model.StatusFailed, res.Status)
	require.Len(t, res.Errors, 1)
}

func TestFocusAppActivatesMatchingWindow(t *testing.T) {
	backend := automation.NewFakeBackend()
	backend.Windows = []string{"Browser", "Notes - Standup"}
	ctx := newTestContext(backend)
	res := model.NewRunResult()

	(&FocusAppStep{Title: "Notes", OnFail: OnFailWarn}).Run(ctx, res)

	require.Equal(t, model.StatusSuccess, res.Status)
	require.Equal(t, "Notes - Standup", backend.ActiveTitle)
}

func TestFocusAppHonorsOnFailPolicy(t *testing.T) {
	backend := automation.NewFakeBackend()
	ctx := newTestContext(backend)

	res := model.NewRunResult()
	(&FocusAppStep{Title: "Ghost", OnFail: OnFailWarn}).Run(ctx, res)
	require.Equal(t, model.StatusSuccess, res.Status)
	require.Equal(t, model.LevelWarning, res.Logs[0].Level)

	res = model.NewRunResult()
	(&FocusAppStep{Title: "Ghost", OnFail: OnFailFail}).Run(ctx, res)
	require.Equal(t, model.StatusFailed, res.Status)
	require.Contains(t, res.Errors[0].Message, "No window found")
}
