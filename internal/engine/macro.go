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

// MacroEngine drives macro definitions: actions plus input-placeholder
// substitution and schedule-prefix steps.
type MacroEngine struct {
	store   *config.Store
	backend automation.Backend
	log     *logger.Logger
}

// NewMacroEngine wires a macro engine to its collaborators.
func NewMacroEngine(store *config.Store, backend automation.Backend, log *logger.Logger) *MacroEngine {
	return &MacroEngine{store: store, backend: backend, log: log}
}

// ListMacros returns the enabled macro definitions.
func (e *MacroEngine) ListMacros() []config.MacroDef {
	macros := make([]config.MacroDef, 0, len(e.store.Macros))
	for _, m := range e.store.Macros {
		if m.Enabled {
			macros = append(macros, m)
		}
	}
	return macros
}

// GetMacro looks up a macro by id, enabled or not.
func (e *MacroEngine) GetMacro(id string) (config.MacroDef, bool) {
	return e.store.Macro(id)
}

// Preview builds the macro's full step list, schedule prefix included, and
// returns the preview lines.
func (e *MacroEngine) Preview(id string, inputs map[string]any) (Preview, error) {
	macro, ok := e.store.Macro(id)
	if !ok {
		return Preview{}, deskerrors.NewNotFoundError("macro", id)
	}

	if inputs == nil {
		inputs = map[string]any{}
	}
	steps, err := e.buildSteps(macro, inputs)
	if err != nil {
		return Preview{}, err
	}

	ctx := e.newContext(inputs, model.NewCancelToken(), true)
	return Preview{ID: macro.ID, Name: macro.Name, Lines: previewLines(ctx, steps)}, nil
}

// Run executes the macro and returns its result. Semantics match
// ActionEngine.Run; the step list additionally carries the schedule prefix
// and substituted parameters.
func (e *MacroEngine) Run(id string, inputs map[string]any, opts RunOptions) (*model.RunResult, error) {
	macro, ok := e.store.Macro(id)
	if !ok {
		return nil, deskerrors.NewNotFoundError("macro", id)
	}

	if inputs == nil {
		inputs = map[string]any{}
	}
	res := model.NewRunResult()
	ctx := e.newContext(inputs, opts.Cancel, opts.DryRun)

	steps, err := e.buildSteps(macro, inputs)
	if err != nil {
		res.AddError(fmt.Sprintf("Invalid macro steps: %v", err), "", "BuildError")
		return res, nil
	}

	res.AddLog(model.LevelInfo, fmt.Sprintf("Running macro: %s", macro.Name), "")
	e.log.WithFields(map[string]any{"macro": macro.ID, "steps": len(steps)}).Info("running macro")

	runSteps(ctx, res, steps, e.log)
	return res, nil
}

// buildSteps substitutes inputs into every authored step's parameters, then
// prepends the schedule prefix: wait_until, then delay, then focus_app, in
// that fixed order. ScheduleTime and ScheduleDelay apply additively when both
// are set.
func (e *MacroEngine) buildSteps(macro config.MacroDef, inputs map[string]any) ([]step.Step, error) {
	var prefix []step.Step
	if macro.ScheduleTime != "" {
		prefix = append(prefix, &step.WaitUntilStep{Target: macro.ScheduleTime})
	}
	if macro.ScheduleDelay > 0 {
		prefix = append(prefix, &step.DelayStep{Seconds: macro.ScheduleDelay})
	}
	if macro.AppTitle != "" {
		prefix = append(prefix, &step.FocusAppStep{Title: macro.AppTitle, OnFail: step.OnFailWarn})
	}

	steps := make([]step.Step, 0, len(prefix)+len(macro.Steps))
	steps = append(steps, prefix...)
	for _, spec := range macro.Steps {
		s, err := step.New(spec.Type, substituteParams(spec.Params, inputs))
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func (e *MacroEngine) newContext(inputs map[string]any, token *model.CancelToken, dryRun bool) *step.Context {
	if token == nil {
		token = model.NewCancelToken()
	}
	return &step.Context{
		Config:  e.store,
		Inputs:  inputs,
		Cancel:  token,
		DryRun:  dryRun,
		Backend: e.backend,
	}
}
