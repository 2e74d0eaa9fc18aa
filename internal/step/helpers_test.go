package step

import (
	"github.com/alexisbeaulieu97/deskpilot/internal/automation"
	"github.com/alexisbeaulieu97/deskpilot/internal/config"
	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// fakeProvider satisfies ConfigProvider from in-memory maps.
type fakeProvider struct {
	profiles  map[string][]string
	templates map[string]config.TemplateDef
}

func (f *fakeProvider) Profile(name string) ([]string, bool) {
	targets, ok := f.profiles[name]
	return targets, ok
}

func (f *fakeProvider) Template(id string) (config.TemplateDef, bool) {
	tdef, ok := f.templates[id]
	return tdef, ok
}

func newTestContext(backend *automation.FakeBackend) *Context {
	return &Context{
		Config: &fakeProvider{
			profiles:  map[string][]string{},
			templates: map[string]config.TemplateDef{},
		},
		Inputs:  map[string]any{},
		Cancel:  model.NewCancelToken(),
		Backend: backend,
	}
}

func provider(ctx *Context) *fakeProvider {
	return ctx.Config.(*fakeProvider)
}

func hasInfoLog(res *model.RunResult) bool {
	for _, entry := range res.Logs {
		if entry.Level == model.LevelInfo {
			return true
		}
	}
	return false
}
