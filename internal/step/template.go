package step

import (
	"fmt"

	"github.com/alexisbeaulieu97/deskpilot/internal/model"
	"github.com/alexisbeaulieu97/deskpilot/internal/tmpl"
)

// RenderTemplateStep renders a configured template against the run inputs and
// stores the result under a named output for later steps to consume.
type RenderTemplateStep struct {
	TemplateID string
	OutputKey  string
}

func (s *RenderTemplateStep) Type() string { return TypeRenderTemplate }

func (s *RenderTemplateStep) Preview(*Context) string {
	return fmt.Sprintf("Render template %q into outputs[%q]", s.TemplateID, s.OutputKey)
}

func (s *RenderTemplateStep) Run(ctx *Context, res *model.RunResult) {
	tdef, ok := ctx.Config.Template(s.TemplateID)
	if !ok {
		res.AddError(fmt.Sprintf("Template not found: %s", s.TemplateID), s.Type(), "")
		return
	}

	rendered, err := tmpl.Render(tdef.Body, ctx.Inputs)
	if err != nil {
		res.AddError(fmt.Sprintf("Template render failed: %v", err), s.Type(), "RenderError")
		return
	}

	res.Outputs[s.OutputKey] = rendered
	res.AddLog(model.LevelInfo, fmt.Sprintf("Rendered template %q", tdef.Name), s.Type())
}
