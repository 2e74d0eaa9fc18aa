package step

import (
	"fmt"

	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// MoveFileStep moves a single file or directory.
type MoveFileStep struct {
	Src  string
	Dest string
}

func (s *MoveFileStep) Type() string { return TypeMoveFile }

func (s *MoveFileStep) Preview(*Context) string {
	return fmt.Sprintf("Move file %s -> %s", s.Src, s.Dest)
}

func (s *MoveFileStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, fmt.Sprintf("Dry-run: move %s -> %s", s.Src, s.Dest), s.Type())
		return
	}
	if err := ctx.Backend.MoveFile(s.Src, s.Dest); err != nil {
		res.AddError(fmt.Sprintf("Move failed: %v", err), s.Type(), "MoveError")
		return
	}
	res.AddLog(model.LevelInfo, fmt.Sprintf("Moved %s -> %s", s.Src, s.Dest), s.Type())
}

// MoveFilesStep moves a list of sources into a destination, stopping at the
// first failure or on cancellation.
type MoveFilesStep struct {
	Sources []string
	Dest    string
}

func (s *MoveFilesStep) Type() string { return TypeMoveFiles }

func (s *MoveFilesStep) Preview(*Context) string {
	return fmt.Sprintf("Move %d files -> %s", len(s.Sources), s.Dest)
}

func (s *MoveFilesStep) Run(ctx *Context, res *model.RunResult) {
	for _, src := range s.Sources {
		if ctx.Cancelled() {
			res.Cancel()
			return
		}
		if ctx.DryRun {
			res.AddLog(model.LevelInfo, fmt.Sprintf("Dry-run: move %s -> %s", src, s.Dest), s.Type())
			continue
		}
		if err := ctx.Backend.MoveFile(src, s.Dest); err != nil {
			res.AddError(fmt.Sprintf("Move failed: %v", err), s.Type(), "MoveError")
			return
		}
		res.AddLog(model.LevelInfo, fmt.Sprintf("Moved %s -> %s", src, s.Dest), s.Type())
	}
}
