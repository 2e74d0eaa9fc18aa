package engine

import (
	"fmt"

	"github.com/alexisbeaulieu97/deskpilot/internal/automation"
	"github.com/alexisbeaulieu97/deskpilot/internal/config"
	"github.com/alexisbeaulieu97/deskpilot/internal/logger"
	"github.com/alexisbeaulieu97/deskpilot/internal/model"
	"github.com/alexisbeaulieu97/deskpilot/internal/step"
	deskerrors "github.com/alexisbeaulieu97/deskpilot/pkg/errors"
)

// RunOptions configures a single run. A nil Cancel token means the run cannot
// be cancelled externally.
type RunOptions struct {
	DryRun bool
	Cancel *model.CancelToken
}

// Preview is the ordered list of human-readable step descriptions an action
// or macro would execute.
type Preview struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// ActionEngine builds and drives step sequences for action definitions.
type ActionEngine struct {
	store   *config.Store
	backend automation.Backend
	log     *logger.Logger
}

// NewActionEngine wires an engine to its configuration, automation backend,
// and logger.
func NewActionEngine(store *config.Store, backend automation.Backend, log *logger.Logger) *ActionEngine {
	return &ActionEngine{store: store, backend: backend, log: log}
}

// ListActions returns every action definition.
func (e *ActionEngine) ListActions() []config.ActionDef {
	return append([]config.ActionDef(nil), e.store.Actions...)
}

// GetAction looks up an action by id.
func (e *ActionEngine) GetAction(id string) (config.ActionDef, bool) {
	return e.store.Action(id)
}

// Preview builds the action's step list against a dry-run context and returns
// the preview lines. No side effects, no result.
func (e *ActionEngine) Preview(id string, inputs map[string]any) (Preview, error) {
	action, ok := e.store.Action(id)
	if !ok {
		return Preview{}, deskerrors.NewNotFoundError("action", id)
	}

	steps, err := buildSteps(action.Steps)
	if err != nil {
		return Preview{}, err
	}

	ctx := e.newContext(inputs, model.NewCancelToken(), true)
	return Preview{ID: action.ID, Name: action.Name, Lines: previewLines(ctx, steps)}, nil
}

// Run executes the action and returns its result. The call blocks for the
// full duration of the run, including sleeps; callers wanting a responsive
// surface invoke it on a background goroutine. The returned error is non-nil
// only for an unknown id — every per-step failure lands in the result.
func (e *ActionEngine) Run(id string, inputs map[string]any, opts RunOptions) (*model.RunResult, error) {
	action, ok := e.store.Action(id)
	if !ok {
		return nil, deskerrors.NewNotFoundError("action", id)
	}

	res := model.NewRunResult()
	ctx := e.newContext(inputs, opts.Cancel, opts.DryRun)

	steps, err := buildSteps(action.Steps)
	if err != nil {
		res.AddError(fmt.Sprintf("Invalid action steps: %v", err), "", "BuildError")
		return res, nil
	}

	res.AddLog(model.LevelInfo, fmt.Sprintf("Running action: %s", action.Name), "")
	e.log.WithFields(map[string]any{"action": action.ID, "steps": len(steps)}).Info("running action")

	runSteps(ctx, res, steps, e.log)
	return res, nil
}

func (e *ActionEngine) newContext(inputs map[string]any, token *model.CancelToken, dryRun bool) *step.Context {
	if token == nil {
		token = model.NewCancelToken()
	}
	if inputs == nil {
		inputs = map[string]any{}
	}
	return &step.Context{
		Config:  e.store,
		Inputs:  inputs,
		Cancel:  token,
		DryRun:  dryRun,
		Backend: e.backend,
	}
}

// buildSteps constructs every step before anything executes: one bad spec
// anywhere prevents the whole sequence from running.
func buildSteps(specs []config.StepSpec) ([]step.Step, error) {
	steps := make([]step.Step, 0, len(specs))
	for _, spec := range specs {
		s, err := step.New(spec.Type, spec.Params)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func previewLines(ctx *step.Context, steps []step.Step) []string {
	lines := make([]string, 0, len(steps))
	for _, s := range steps {
		lines = append(lines, s.Preview(ctx))
	}
	return lines
}

// runSteps drives the built sequence: cancellation check, preview log, then
// execution, stopping at the first recorded failure or observed cancellation.
func runSteps(ctx *step.Context, res *model.RunResult, steps []step.Step, log *logger.Logger) {
	for _, s := range steps {
		if ctx.Cancelled() {
			res.Cancel()
			res.AddLog(model.LevelWarning, "Cancelled", s.Type())
			return
		}

		res.AddLog(model.LevelDebug, s.Preview(ctx), s.Type())
		log.WithFields(map[string]any{"step": s.Type()}).Debug(s.Preview(ctx))

		runOne(ctx, res, s)
		if res.Failed() {
			return
		}
	}
}

// runOne executes a single step behind a recover barrier so a panicking step
// is recorded as a failure instead of tearing down the host.
func runOne(ctx *step.Context, res *model.RunResult, s step.Step) {
	defer func() {
		if r := recover(); r != nil {
			res.AddError(fmt.Sprintf("Step failed: %v", r), s.Type(), "Panic")
		}
	}()
	s.Run(ctx, res)
}
