package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/deskpilot/internal/automation"
	"github.com/alexisbeaulieu97/deskpilot/internal/config"
	"github.com/alexisbeaulieu97/deskpilot/internal/engine"
)

// engines bundles the two orchestrators a command may need.
type engines struct {
	actions *engine.ActionEngine
	macros  *engine.MacroEngine
}

func loadEngines(flags *rootFlags) (*engines, error) {
	store, err := config.Load(flags.configDir)
	if err != nil {
		return nil, err
	}

	backend := automation.NewRobotBackend()
	return &engines{
		actions: engine.NewActionEngine(store, backend, flags.log),
		macros:  engine.NewMacroEngine(store, backend, flags.log),
	}, nil
}

// parseInputs converts repeated --input key=value flags into the run's input
// map.
func parseInputs(pairs []string) (map[string]any, error) {
	inputs := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --input %q: expected key=value", pair)
		}
		inputs[key] = value
	}
	return inputs, nil
}
