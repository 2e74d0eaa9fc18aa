package step

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// OpenAppStep opens an application or document path with its default handler.
type OpenAppStep struct {
	Path string
}

func (s *OpenAppStep) Type() string { return TypeOpenApp }

func (s *OpenAppStep) Preview(*Context) string {
	return fmt.Sprintf("Open app: %s", s.Path)
}

func (s *OpenAppStep) Run(ctx *Context, res *model.RunResult) {
	launchTarget(ctx, res, s.Type(), s.Path)
}

// OpenURLStep opens a URL with the system handler.
type OpenURLStep struct {
	URL string
}

func (s *OpenURLStep) Type() string { return TypeOpenURL }

func (s *OpenURLStep) Preview(*Context) string {
	return fmt.Sprintf("Open URL: %s", s.URL)
}

func (s *OpenURLStep) Run(ctx *Context, res *model.RunResult) {
	launchTarget(ctx, res, s.Type(), s.URL)
}

// RunCommandStep spawns a shell command without waiting for it.
type RunCommandStep struct {
	Command string
}

func (s *RunCommandStep) Type() string { return TypeRun }

func (s *RunCommandStep) Preview(*Context) string {
	return fmt.Sprintf("Run command: %s", s.Command)
}

func (s *RunCommandStep) Run(ctx *Context, res *model.RunResult) {
	if ctx.DryRun {
		res.AddLog(model.LevelInfo, fmt.Sprintf("Dry-run: would run %s", s.Command), s.Type())
		return
	}
	if err := ctx.Backend.StartCommand(s.Command); err != nil {
		res.AddError(fmt.Sprintf("Command failed: %v", err), s.Type(), "CommandError")
		return
	}
	res.AddLog(model.LevelInfo, fmt.Sprintf("Started command: %s", s.Command), s.Type())
}

// LaunchProfileStep launches every target of a named profile in order,
// honoring a per-target delay and short-circuiting on cancellation.
type LaunchProfileStep struct {
	Profile string
	DelayMS int
}

func (s *LaunchProfileStep) Type() string { return TypeLaunchProfile }

func (s *LaunchProfileStep) Preview(ctx *Context) string {
	targets, _ := ctx.Config.Profile(s.Profile)
	return fmt.Sprintf("Launch profile %q (%d targets)", s.Profile, len(targets))
}

func (s *LaunchProfileStep) Run(ctx *Context, res *model.RunResult) {
	targets, _ := ctx.Config.Profile(s.Profile)
	if len(targets) == 0 {
		res.AddError(fmt.Sprintf("Profile %q has no targets", s.Profile), s.Type(), "")
		return
	}

	for _, target := range targets {
		if ctx.Cancelled() {
			res.Cancel()
			res.AddLog(model.LevelWarning, "Cancelled", s.Type())
			return
		}
		launchTarget(ctx, res, s.Type(), target)
		if !ctx.DryRun && s.DelayMS > 0 {
			time.Sleep(time.Duration(s.DelayMS) * time.Millisecond)
		}
	}
}

// launchTarget opens a single target: URLs go to the system handler, existing
// paths to their default application, anything else is spawned as a shell
// command. Failures are recorded on the result, never propagated.
func launchTarget(ctx *Context, res *model.RunResult, stepType, target string) {
	lower := strings.ToLower(target)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if ctx.DryRun {
			res.AddLog(model.LevelInfo, fmt.Sprintf("Dry-run: would open URL %s", target), stepType)
			return
		}
		if err := ctx.Backend.OpenURL(target); err != nil {
			res.AddError(fmt.Sprintf("Failed to launch %q: %v", target, err), stepType, "LaunchError")
			return
		}
		res.AddLog(model.LevelInfo, fmt.Sprintf("Opened URL: %s", target), stepType)
		return
	}

	if ctx.DryRun {
		res.AddLog(model.LevelInfo, fmt.Sprintf("Dry-run: would launch %s", target), stepType)
		return
	}

	var err error
	if ctx.Backend.PathExists(target) {
		err = ctx.Backend.OpenPath(target)
	} else {
		err = ctx.Backend.StartCommand(target)
	}
	if err != nil {
		res.AddError(fmt.Sprintf("Failed to launch %q: %v", target, err), stepType, "LaunchError")
		return
	}
	res.AddLog(model.LevelInfo, fmt.Sprintf("Launched: %s", target), stepType)
}
