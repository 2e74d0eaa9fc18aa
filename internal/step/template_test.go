package step

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deskpilot/internal/automation"
	"github.com/alexisbeaulieu97/deskpilot/internal/config"
	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

func TestRenderTemplateErrorsWhenTemplateMissing(t *testing.T) {
	ctx := newTestContext(automation.NewFakeBackend())
	res := model.NewRunResult()

	(&RenderTemplateStep{TemplateID: "ghost", OutputKey: "out"}).Run(ctx, res)

	require.Equal(t, model.StatusFailed, res.Status)
	require.Contains(t, res.Errors[0].Message, "Template not found: ghost")
}

func TestRenderTemplateStoresOutput(t *testing.T) {
	ctx := newTestContext(automation.NewFakeBackend())
	provider(ctx).templates["followup"] = config.TemplateDef{
		ID:   "followup",
		Name: "Follow-up email",
		Body: "Hi {{.name}}, see you {{.when}}.",
	}
	ctx.Inputs = map[string]any{"name": "Ada", "when": "tomorrow"}
	res := model.NewRunResult()

	(&RenderTemplateStep{TemplateID: "followup", OutputKey: "email"}).Run(ctx, res)

	require.Equal(t, model.StatusSuccess, res.Status)
	require.Equal(t, "Hi Ada, see you tomorrow.", res.Outputs["email"])
	require.True(t, hasInfoLog(res))
}

func TestRenderTemplateCatchesRenderFailure(t *testing.T) {
	ctx := newTestContext(automation.NewFakeBackend())
	provider(ctx).templates["broken"] = config.TemplateDef{
		ID:   "broken",
		Name: "Broken",
		Body: "Hi {{.name",
	}
	res := model.NewRunResult()

	(&RenderTemplateStep{TemplateID: "broken", OutputKey: "out"}).Run(ctx, res)

	require.Equal(t, model.StatusFailed, res.Status)
	require.Equal(t, "RenderError", res.Errors[0].Kind)
	require.NotContains(t, res.Outputs, "out")
}

func TestRenderThenCopyRoundTrip(t *testing.T) {
	backend := automation.NewFakeBackend()
	ctx := newTestContext(backend)
	provider(ctx).templates["followup"] = config.TemplateDef{
		ID:   "followup",
		Name: "Follow-up email",
		Body: "Hi {{.name}}",
	}
	ctx.Inputs = map[string]any{"name": "Ada"}
	res := model.NewRunResult()

	(&RenderTemplateStep{TemplateID: "followup", OutputKey: "email"}).Run(ctx, res)
	(&CopyOutputStep{OutputKey: "email"}).Run(ctx, res)

	require.Equal(t, model.StatusSuccess, res.Status)
	require.Equal(t, "Hi Ada", backend.Clipboard)
}
