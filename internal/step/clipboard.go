package step

import (
	"fmt"

	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// PasteStep sends the platform paste chord.
type PasteStep struct{}

func (s *PasteStep) Type() string { return TypePaste }

func (s *PasteStep) Preview(*Context) string {
	return "Paste clipboard (Ctrl+V)"
}

func (s *PasteStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping paste", s.Type())
		return
	}
	if err := ctx.Backend.Hotkey([]string{"ctrl", "v"}); err != nil {
		res.AddError(fmt.Sprintf("Paste failed: %v", err), s.Type(), "InputError")
		return
	}
	res.AddLog(model.LevelInfo, "Pasted clipboard", s.Type())
}

// PasteHistoryStep pastes an entry from the host's clipboard history. Without
// a history manager attached it falls back to the current clipboard.
type PasteHistoryStep struct {
	Index int
}

func (s *PasteHistoryStep) Type() string { return TypePasteHistory }

func (s *PasteHistoryStep) Preview(*Context) string {
	names := []string{"last", "2nd last", "3rd last", "4th last", "5th last"}
	name := fmt.Sprintf("%dth", s.Index+1)
	if s.Index >= 0 && s.Index < len(names) {
		name = names[s.Index]
	}
	return fmt.Sprintf("Paste %s clipboard item", name)
}

func (s *PasteHistoryStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping paste history", s.Type())
		return
	}
	if err := ctx.Backend.Hotkey([]string{"ctrl", "v"}); err != nil {
		res.AddError(fmt.Sprintf("Paste failed: %v", err), s.Type(), "InputError")
		return
	}
	res.AddLog(model.LevelInfo, fmt.Sprintf("Pasted from history (index %d)", s.Index), s.Type())
}

// SetClipboardStep replaces the clipboard text.
type SetClipboardStep struct {
	Text string
}

func (s *SetClipboardStep) Type() string { return TypeSetClipboard }

func (s *SetClipboardStep) Preview(*Context) string {
	return "Set clipboard text"
}

func (s *SetClipboardStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping clipboard set", s.Type())
		return
	}
	if err := ctx.Backend.WriteClipboard(s.Text); err != nil {
		res.AddError(fmt.Sprintf("Clipboard write failed: %v", err), s.Type(), "ClipboardError")
		return
	}
	res.AddLog(model.LevelInfo, "Clipboard set", s.Type())
}

// CopyOutputStep copies a named run output to the clipboard. A missing output
// is an error: producers must run before consumers.
type CopyOutputStep struct {
	OutputKey string
}

func (s *CopyOutputStep) Type() string { return TypeCopyOutput }

func (s *CopyOutputStep) Preview(*Context) string {
	return fmt.Sprintf("Copy outputs[%q] to clipboard", s.OutputKey)
}

func (s *CopyOutputStep) Run(ctx *Context, res *model.RunResult) {
	value, ok := res.Outputs[s.OutputKey]
	if !ok || value == nil {
		res.AddError(fmt.Sprintf("Missing output: %s", s.OutputKey), s.Type(), "")
		return
	}
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping clipboard write", s.Type())
		return
	}
	if err := ctx.Backend.WriteClipboard(fmt.Sprint(value)); err != nil {
		res.AddError(fmt.Sprintf("Clipboard write failed: %v", err), s.Type(), "ClipboardError")
		return
	}
	res.AddLog(model.LevelInfo, "Copied to clipboard", s.Type())
}
