package step

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// ClickStep clicks a pointer button at absolute coordinates.
type ClickStep struct {
	X        int
	Y        int
	Button   string
	Clicks   int
	Interval float64
}

func (s *ClickStep) Type() string { return TypeClick }

func (s *ClickStep) Preview(*Context) string {
	return fmt.Sprintf("Click %s at (%d, %d)", s.Button, s.X, s.Y)
}

func (s *ClickStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping click", s.Type())
		return
	}
	interval := time.Duration(s.Interval * float64(time.Second))
	if err := ctx.Backend.Click(s.X, s.Y, s.Button, s.Clicks, interval); err != nil {
		res.AddError(fmt.Sprintf("Click failed: %v", err), s.Type(), "InputError")
		return
	}
	res.AddLog(model.LevelInfo, fmt.Sprintf("Clicked %s at (%d, %d)", s.Button, s.X, s.Y), s.Type())
}

// TextStep types a block of text without per-character pacing.
type TextStep struct {
	Text string
}

func (s *TextStep) Type() string { return TypeText }

func (s *TextStep) Preview(*Context) string {
	return fmt.Sprintf("Type text (%d chars)", len(s.Text))
}

func (s *TextStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping typing", s.Type())
		return
	}
	if err := ctx.Backend.TypeText(s.Text, 0); err != nil {
		res.AddError(fmt.Sprintf("Typing failed: %v", err), s.Type(), "InputError")
		return
	}
	res.AddLog(model.LevelInfo, "Typed text", s.Type())
}

// TypeTextStep types text with a per-character interval.
type TypeTextStep struct {
	Text     string
	Interval float64
}

func (s *TypeTextStep) Type() string { return TypeTypeText }

func (s *TypeTextStep) Preview(*Context) string {
	preview := s.Text
	if len(preview) > 30 {
		preview = preview[:30] + "..."
	}
	return fmt.Sprintf("Type: %s", preview)
}

func (s *TypeTextStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping type text", s.Type())
		return
	}
	interval := time.Duration(s.Interval * float64(time.Second))
	if err := ctx.Backend.TypeText(s.Text, interval); err != nil {
		res.AddError(fmt.Sprintf("Typing failed: %v", err), s.Type(), "InputError")
		return
	}
	res.AddLog(model.LevelInfo, fmt.Sprintf("Typed %d characters", len(s.Text)), s.Type())
}

// HotkeyStep presses a key combination.
type HotkeyStep struct {
	Keys []string
}

func (s *HotkeyStep) Type() string { return TypeHotkey }

func (s *HotkeyStep) Preview(*Context) string {
	return fmt.Sprintf("Send hotkey: %s", strings.Join(s.Keys, "+"))
}

func (s *HotkeyStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping hotkey", s.Type())
		return
	}
	if err := ctx.Backend.Hotkey(s.Keys); err != nil {
		res.AddError(fmt.Sprintf("Hotkey failed: %v", err), s.Type(), "InputError")
		return
	}
	res.AddLog(model.LevelInfo, fmt.Sprintf("Pressed %s", strings.Join(s.Keys, "+")), s.Type())
}
