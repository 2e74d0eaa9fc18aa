package config

import (
	"fmt"
	"path/filepath"

	deskerrors "github.com/alexisbeaulieu97/deskpilot/pkg/errors"
)

// Store holds the loaded configuration: action and macro definitions, text
// templates, and launch profiles. It is read-only to the engine; editing and
// persistence belong to host tooling.
type Store struct {
	Actions   []ActionDef
	Macros    []MacroDef
	Templates []TemplateDef
	Profiles  map[string][]string
}

// Load reads actions.yaml, macros.yaml, templates.yaml, and profiles.yaml
// from dir. Every file is optional; present files must parse and validate.
func Load(dir string) (*Store, error) {
	var (
		actions   actionsFile
		macros    macrosFile
		templates templatesFile
		profiles  profilesFile
	)

	if err := parseFile(filepath.Join(dir, "actions.yaml"), &actions); err != nil {
		return nil, err
	}
	if err := parseFile(filepath.Join(dir, "macros.yaml"), &macros); err != nil {
		return nil, err
	}
	if err := parseFile(filepath.Join(dir, "templates.yaml"), &templates); err != nil {
		return nil, err
	}
	if err := parseFile(filepath.Join(dir, "profiles.yaml"), &profiles); err != nil {
		return nil, err
	}

	s := &Store{
		Actions:   actions.Actions,
		Macros:    macros.Macros,
		Templates: templates.Templates,
		Profiles:  profiles.Profiles,
	}
	if s.Profiles == nil {
		s.Profiles = make(map[string][]string)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) validate() error {
	seen := make(map[string]string)

	for i, a := range s.Actions {
		if err := validateStruct("action", a); err != nil {
			return err
		}
		if err := claimID(seen, "action", a.ID, i); err != nil {
			return err
		}
	}

	for i, m := range s.Macros {
		if err := validateStruct("macro", m); err != nil {
			return err
		}
		if err := claimID(seen, "macro", m.ID, i); err != nil {
			return err
		}
	}

	for i, t := range s.Templates {
		if err := validateStruct("template", t); err != nil {
			return err
		}
		if err := claimID(seen, "template", t.ID, i); err != nil {
			return err
		}
	}

	return nil
}

func claimID(seen map[string]string, kind, id string, index int) error {
	key := kind + ":" + id
	if _, dup := seen[key]; dup {
		field := fmt.Sprintf("%ss[%d].id", kind, index)
		return deskerrors.NewValidationError(field, fmt.Sprintf("duplicate %s id %q", kind, id), nil)
	}
	seen[key] = id
	return nil
}

// Action looks up an action definition by id.
func (s *Store) Action(id string) (ActionDef, bool) {
	for _, a := range s.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return ActionDef{}, false
}

// Macro looks up a macro definition by id, enabled or not.
func (s *Store) Macro(id string) (MacroDef, bool) {
	for _, m := range s.Macros {
		if m.ID == id {
			return m, true
		}
	}
	return MacroDef{}, false
}

// Template looks up a template definition by id.
func (s *Store) Template(id string) (TemplateDef, bool) {
	for _, t := range s.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return TemplateDef{}, false
}

// Profile returns the ordered target list of a launch profile.
func (s *Store) Profile(name string) ([]string, bool) {
	targets, ok := s.Profiles[name]
	return targets, ok
}
