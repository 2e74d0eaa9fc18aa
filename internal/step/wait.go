package step

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// WaitStep pauses for a fixed number of milliseconds. Short by convention, so
// it does not poll the cancel token.
type WaitStep struct {
	MS int
}

func (s *WaitStep) Type() string { return TypeWait }

func (s *WaitStep) Preview(*Context) string {
	return fmt.Sprintf("Wait %dms", s.MS)
}

func (s *WaitStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping wait", s.Type())
		return
	}
	if s.MS > 0 {
		time.Sleep(time.Duration(s.MS) * time.Millisecond)
	}
}

// DelayStep sleeps for a number of seconds in one-second increments, checking
// the cancel token between increments.
type DelayStep struct {
	Seconds int
}

func (s *DelayStep) Type() string { return TypeDelay }

func (s *DelayStep) Preview(*Context) string {
	if s.Seconds >= 60 {
		return fmt.Sprintf("Wait %d minute(s)", s.Seconds/60)
	}
	return fmt.Sprintf("Wait %d second(s)", s.Seconds)
}

func (s *DelayStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, "Dry-run: skipping delay", s.Type())
		return
	}

	remaining := time.Duration(s.Seconds) * time.Second
	for remaining > 0 {
		if ctx.Cancelled() {
			res.Cancel()
			res.AddLog(model.LevelWarning, "Cancelled delay", s.Type())
			return
		}
		chunk := min(remaining, time.Second)
		time.Sleep(chunk)
		remaining -= chunk
	}
}

// WaitUntilStep sleeps until the next occurrence of a 24-hour HH:MM
// wall-clock time, in five-second increments with cancellation checks.
type WaitUntilStep struct {
	Target string
}

func (s *WaitUntilStep) Type() string { return TypeWaitUntil }

func (s *WaitUntilStep) Preview(*Context) string {
	return fmt.Sprintf("Wait until %s", s.Target)
}

func (s *WaitUntilStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, fmt.Sprintf("Dry-run: skipping wait until %s", s.Target), s.Type())
		return
	}

	target, err := NextOccurrence(time.Now(), s.Target)
	if err != nil {
		res.AddError(fmt.Sprintf("Invalid time format: %s", s.Target), s.Type(), "")
		return
	}

	remaining := time.Until(target)
	for remaining > 0 {
		if ctx.Cancelled() {
			res.Cancel()
			res.AddLog(model.LevelWarning, "Cancelled scheduled wait", s.Type())
			return
		}
		chunk := min(remaining, 5*time.Second)
		time.Sleep(chunk)
		remaining -= chunk
	}
}

// NextOccurrence resolves an HH:MM string to the next moment that wall-clock
// time occurs strictly after now. A time already passed today rolls over to
// tomorrow.
func NextOccurrence(now time.Time, target string) (time.Time, error) {
	parsed, err := time.Parse("15:04", target)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q as HH:MM: %w", target, err)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}
