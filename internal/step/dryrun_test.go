package step

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deskpilot/internal/automation"
	"github.com/alexisbeaulieu97/deskpilot/internal/config"
	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// Every registered type, built with workable params, must run under dry-run
// without touching the backend and still log at least one INFO entry.
func TestDryRunTouchesNothingForEveryType(t *testing.T) {
	RegisterDefaults()

	params := map[string]Params{
		TypeWait:           {"ms": 5},
		TypeDelay:          {"seconds": 1},
		TypeWaitUntil:      {"time": "09:30"},
		TypeLaunchProfile:  {"profile": "work"},
		TypeRenderTemplate: {"template_id": "greet"},
		TypeCopyOutput:     {"output_key": "rendered_text"},
		TypeHotkey:         {"keys": "ctrl+c"},
		TypeText:           {"text": "hello"},
		TypeTypeText:       {"text": "hello"},
		TypePaste:          {},
		TypePasteHistory:   {"history_index": 1},
		TypeSetClipboard:   {"text": "hello"},
		TypeOpenApp:        {"path": "editor"},
		TypeOpenURL:        {"url": "https://example.com"},
		TypeRun:            {"command": "make build"},
		TypeMoveFile:       {"src": "/a", "dest": "/b"},
		TypeMoveFiles:      {"sources": []string{"/a"}, "dest": "/b"},
		TypeFocusWindow:    {"title": "Notes"},
		TypeFocusApp:       {"title": "Notes"},
		TypeClick:          {"x": 1, "y": 1},
		TypeJiggle:         {"duration": 1},
	}

	for _, stepType := range Types() {
		t.Run(stepType, func(t *testing.T) {
			p, ok := params[stepType]
			require.True(t, ok, "no params for %s", stepType)

			s, err := New(stepType, p)
			require.NoError(t, err)

			backend := automation.NewFakeBackend()
			ctx := newTestContext(backend)
			ctx.DryRun = true
			provider(ctx).profiles["work"] = []string{"https://example.com"}
			provider(ctx).templates["greet"] = config.TemplateDef{ID: "greet", Name: "Greet", Body: "hi"}

			res := model.NewRunResult()
			res.Outputs["rendered_text"] = "seed"

			s.Run(ctx, res)

			require.Empty(t, backend.Calls)
			require.Empty(t, res.Errors)
			require.True(t, hasInfoLog(res))
			require.NotEmpty(t, s.Preview(ctx))
		})
	}
}
