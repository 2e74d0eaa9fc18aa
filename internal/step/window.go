package step

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// OnFail policies for the focus steps.
const (
	OnFailWarn = "warn"
	OnFailFail = "fail"
)

// FocusWindowStep verifies the active window title contains a substring. It
// changes nothing; on mismatch it warns or fails per the OnFail policy.
type FocusWindowStep struct {
	Title  string
	OnFail string
}

func (s *FocusWindowStep) Type() string { return TypeFocusWindow }

func (s *FocusWindowStep) Preview(*Context) string {
	return fmt.Sprintf("Ensure window with %q is focused", s.Title)
}

func (s *FocusWindowStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, fmt.Sprintf("Dry-run: would verify focus %q", s.Title), s.Type())
		return
	}

	title := ctx.Backend.ActiveWindowTitle()
	if title != "" && strings.Contains(strings.ToLower(title), strings.ToLower(s.Title)) {
		res.AddLog(model.LevelInfo, fmt.Sprintf("Focus OK: %s", title), s.Type())
		return
	}

	msg := fmt.Sprintf("Active window mismatch (expected contains %q, got %q)", s.Title, title)
	if s.OnFail == OnFailFail {
		res.AddError(msg, s.Type(), "")
		return
	}
	res.AddLog(model.LevelWarning, msg, s.Type())
}

// FocusAppStep activates the first window whose title contains a substring.
type FocusAppStep struct {
	Title  string
	OnFail string
}

func (s *FocusAppStep) Type() string { return TypeFocusApp }

func (s *FocusAppStep) Preview(*Context) string {
	return fmt.Sprintf("Focus app window containing %q", s.Title)
}

func (s *FocusAppStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, fmt.Sprintf("Dry-run: focus window %q", s.Title), s.Type())
		return
	}

	focused, err := ctx.Backend.FocusWindow(s.Title)
	if err == nil {
		res.AddLog(model.LevelInfo, fmt.Sprintf("Focused %q", focused), s.Type())
		return
	}

	msg := fmt.Sprintf("No window found containing %q", s.Title)
	if s.OnFail == OnFailFail {
		res.AddError(msg, s.Type(), "")
		return
	}
	res.AddLog(model.LevelWarning, msg, s.Type())
}
