package config

import (
	"gopkg.in/yaml.v3"
)

// StepSpec is the stored (type, params) pair a live step is constructed from.
// Params values are heterogeneous: strings, integers, floats, or lists of
// strings. Specs are immutable once loaded.
type StepSpec struct {
	Type   string         `yaml:"type" json:"type"  validate:"required"`
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// ActionDef is a named, ordered list of step specs. Tags, Favorite, and
// Hotkey carry no execution semantics; they exist for host surfaces.
type ActionDef struct {
	ID          string     `yaml:"id" json:"id" validate:"required,def_id"`
	Name        string     `yaml:"name" json:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string   `yaml:"tags,omitempty" json:"tags,omitempty"`
	Favorite    bool       `yaml:"favorite,omitempty" json:"favorite,omitempty"`
	Hotkey      string     `yaml:"hotkey,omitempty" json:"hotkey,omitempty"`
	Steps       []StepSpec `yaml:"steps,omitempty" json:"steps,omitempty" validate:"dive"`
}

// MacroDef extends the action shape with scheduling metadata and
// input-placeholder substitution support. ScheduleTime and ScheduleDelay are
// additive: when both are set the run waits for the wall-clock time first and
// then the delay.
type MacroDef struct {
	ID            string     `yaml:"id" json:"id" validate:"required,def_id"`
	Name          string     `yaml:"name" json:"name" validate:"required,min=1,max=100"`
	Description   string     `yaml:"description,omitempty" json:"description,omitempty"`
	Category      string     `yaml:"category,omitempty" json:"category,omitempty"`
	Enabled       bool       `yaml:"enabled" json:"enabled"`
	Hotkey        string     `yaml:"hotkey,omitempty" json:"hotkey,omitempty"`
	Safety        string     `yaml:"safety,omitempty" json:"safety,omitempty" validate:"omitempty,oneof=safe confirm danger"`
	Steps         []StepSpec `yaml:"steps,omitempty" json:"steps,omitempty" validate:"dive"`
	ScheduleTime  string     `yaml:"schedule_time,omitempty" json:"schedule_time,omitempty" validate:"omitempty,clock"`
	ScheduleDelay int        `yaml:"schedule_delay,omitempty" json:"schedule_delay,omitempty" validate:"omitempty,min=0,max=86400"`
	AppTitle      string     `yaml:"app_title,omitempty" json:"app_title,omitempty"`
}

// UnmarshalYAML applies the enabled-by-default and safe-by-default rules
// without requiring authors to spell them out.
func (m *MacroDef) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		ID            string     `yaml:"id"`
		Name          string     `yaml:"name"`
		Description   string     `yaml:"description"`
		Category      string     `yaml:"category"`
		Enabled       *bool      `yaml:"enabled"`
		Hotkey        string     `yaml:"hotkey"`
		Safety        string     `yaml:"safety"`
		Steps         []StepSpec `yaml:"steps"`
		ScheduleTime  string     `yaml:"schedule_time"`
		ScheduleDelay int        `yaml:"schedule_delay"`
		AppTitle      string     `yaml:"app_title"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	m.ID = raw.ID
	m.Name = raw.Name
	m.Description = raw.Description
	m.Category = raw.Category
	m.Hotkey = raw.Hotkey
	m.Safety = raw.Safety
	m.Steps = raw.Steps
	m.ScheduleTime = raw.ScheduleTime
	m.ScheduleDelay = raw.ScheduleDelay
	m.AppTitle = raw.AppTitle

	if raw.Enabled != nil {
		m.Enabled = *raw.Enabled
	} else {
		m.Enabled = true
	}
	if m.Safety == "" {
		m.Safety = "safe"
	}
	return nil
}

// FieldDef describes one fill-in field of a template, for host surfaces that
// collect inputs before a run.
type FieldDef struct {
	Key      string   `yaml:"key" json:"key" validate:"required"`
	Label    string   `yaml:"label,omitempty" json:"label,omitempty"`
	Type     string   `yaml:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=text multiline choice"`
	Required bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Default  string   `yaml:"default,omitempty" json:"default,omitempty"`
	Choices  []string `yaml:"choices,omitempty" json:"choices,omitempty"`
}

// TemplateDef is a named text template plus its field schema.
type TemplateDef struct {
	ID       string     `yaml:"id" json:"id" validate:"required,def_id"`
	Name     string     `yaml:"name" json:"name" validate:"required"`
	Category string     `yaml:"category,omitempty" json:"category,omitempty"`
	Body     string     `yaml:"body" json:"body" validate:"required"`
	Fields   []FieldDef `yaml:"fields,omitempty" json:"fields,omitempty" validate:"dive"`
	Hotkey   string     `yaml:"hotkey,omitempty" json:"hotkey,omitempty"`
}

// Per-file document wrappers.
type actionsFile struct {
	Version int         `yaml:"version,omitempty"`
	Actions []ActionDef `yaml:"actions,omitempty"`
}

type macrosFile struct {
	Version int        `yaml:"version,omitempty"`
	Macros  []MacroDef `yaml:"macros,omitempty"`
}

type templatesFile struct {
	Version   int           `yaml:"version,omitempty"`
	Templates []TemplateDef `yaml:"templates,omitempty"`
}

type profilesFile struct {
	Version  int                 `yaml:"version,omitempty"`
	Profiles map[string][]string `yaml:"profiles,omitempty"`
}
