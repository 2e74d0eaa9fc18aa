package step

import (
	"github.com/alexisbeaulieu97/deskpilot/internal/automation"
	"github.com/alexisbeaulieu97/deskpilot/internal/config"
	"github.com/alexisbeaulieu97/deskpilot/internal/model"
)

// ConfigProvider is the read-only slice of configuration the steps consume:
// launch profiles and text templates resolved by name.
type ConfigProvider interface {
	Profile(name string) ([]string, bool)
	Template(id string) (config.TemplateDef, bool)
}

// Context is the per-run bundle handed to every step. It is created fresh for
// each run or preview and owned by that run alone.
type Context struct {
	Config  ConfigProvider
	Inputs  map[string]any
	Cancel  *model.CancelToken
	DryRun  bool
	Backend automation.Backend
}

// Cancelled reports whether the run's token has been cancelled.
func (c *Context) Cancelled() bool {
	return c.Cancel.Cancelled()
}

// Step is one unit of automation work. Preview is pure and safe to call any
// number of times; Run may have side effects unless the context is in dry-run
// mode, in which case the step logs an informational skip instead.
type Step interface {
	Type() string
	Preview(ctx *Context) string
	Run(ctx *Context, res *model.RunResult)
}
