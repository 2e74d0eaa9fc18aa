package step

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deskpilot/internal/automation"
	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

func TestOpenURLUsesSystemHandler(t *testing.T) {
	backend := automation.NewFakeBackend()
	ctx := newTestContext(backend)
	res := model.NewRunResult()

	(&OpenURLStep{URL: "https://example.com"}).Run(ctx, res)

	require.Equal(t, []string{"open_url https://example.com"}, backend.Calls)
	require.Equal(t, model.StatusSuccess, res.Status)
}

func TestOpenAppDispatchesOnTargetShape(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		exists   bool
		wantCall string
	}{
		{"url scheme", "HTTPS://Example.com/page", false, "open_url HTTPS://Example.com/page"},
		{"existing path", "/usr/bin/editor", true, "open_path /usr/bin/editor"},
		{"fallback command", "editor --new-window", false, "start editor --new-window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := automation.NewFakeBackend()
			if tt.exists {
				backend.Paths[tt.target] = true
			}
			ctx := newTestContext(backend)
			res := model.NewRunResult()

			(&OpenAppStep{Path: tt.target}).Run(ctx, res)

			require.Equal(t, []string{tt.wantCall}, backend.Calls)
			require.Equal(t, model.StatusSuccess, res.Status)
		})
	}
}

func TestLaunchRecordsFailureWithoutPropagating(t *testing.T) {
	backend := automation.NewFakeBackend()
	backend.Fail["start"] = fmt.Errorf("spawn refused")
	ctx := newTestContext(backend)
	res := model.NewRunResult()

	(&OpenAppStep{Path: "ghost-command"}).Run(ctx, res)

	require.Equal(t, model.StatusFailed, res.Status)
	require.Len(t, res.Errors, 1)
	require.Contains(t, res.Errors[0].Message, "spawn refused")
	require.Equal(t, "LaunchError", res.Errors[0].Kind)
}

func TestRunCommandStartsShell(t *testing.T) {
	backend := automation.NewFakeBackend()
	ctx := newTestContext(backend)
	res := model.NewRunResult()

	(&RunCommandStep{Command: "make deploy"}).Run(ctx, res)

	require.Equal(t, []string{"start make deploy"}, backend.Calls)
	require.Equal(t, model.StatusSuccess, res.Status)
}

func TestLaunchProfileErrorsWhenMissingOrEmpty(t *testing.T) {
	for _, profile := range []string{"absent", "empty"} {
		backend := automation.NewFakeBackend()
		ctx := newTestContext(backend)
		provider(ctx).profiles["empty"] = nil
		res := model.NewRunResult()

		(&LaunchProfileStep{Profile: profile}).Run(ctx, res)

		require.Equal(t, model.StatusFailed, res.Status, profile)
		require.Len(t, res.Errors, 1, profile)
		require.Contains(t, res.Errors[0].Message, "has no targets", profile)
		require.Empty(t, backend.Calls, profile)
	}
}

func TestLaunchProfileLaunchesTargetsInOrder(t *testing.T) {
	backend := automation.NewFakeBackend()
	ctx := newTestContext(backend)
	provider(ctx).profiles["work"] = []string{"https://mail.example.com", "tracker --open"}
	res := model.NewRunResult()

	(&LaunchProfileStep{Profile: "work", DelayMS: 1}).Run(ctx, res)

	require.Equal(t, []string{
		"open_url https://mail.example.com",
		"start tracker --open",
	}, backend.Calls)
	require.Equal(t, model.StatusSuccess, res.Status)
}

func TestLaunchProfileShortCircuitsOnCancellation(t *testing.T) {
	backend := automation.NewFakeBackend()
	ctx := newTestContext(backend)
	ctx.Cancel.Cancel()
	provider(ctx).profiles["work"] = []string{"https://a.example.com", "https://b.example.com"}
	res := model.NewRunResult()

	(&LaunchProfileStep{Profile: "work"}).Run(ctx, res)

	require.Empty(t, backend.Calls)
	require.Equal(t, model.StatusCancelled, res.Status)
}

func TestLaunchProfilePreviewCountsTargets(t *testing.T) {
	ctx := newTestContext(automation.NewFakeBackend())
	provider(ctx).profiles["work"] = []string{"a", "b", "c"}

	got := (&LaunchProfileStep{Profile: "work"}).Preview(ctx)
	require.Equal(t, `Launch profile "work" (3 targets)`, got)
}
