package step

import (
	"fmt"
	"sort"
	"sync"

	deskerrors "github.com/alexisbeaulieu97/deskpilot/pkg/errors"
)

// Builder constructs a step from its parameter bag. Coercion failures are
// build failures; no step with bad parameters ever executes.
type Builder func(params Params) (Step, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Builder)
)

// Register adds a builder for the provided step type.
func Register(stepType string, b Builder) error {
	if b == nil {
		return deskerrors.NewStepError(stepType, fmt.Errorf("builder is nil"))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[stepType]; exists {
		return deskerrors.NewStepError(stepType, fmt.Errorf("step type already registered"))
	}

	registry[stepType] = b
	return nil
}

// New constructs a step of the given type from its parameter bag. Unknown
// types and uncoercible parameters both return a StepError.
func New(stepType string, params map[string]any) (Step, error) {
	registryMu.RLock()
	b, ok := registry[stepType]
	registryMu.RUnlock()

	if !ok {
		return nil, deskerrors.NewStepError(stepType, fmt.Errorf("no step type registered"))
	}

	s, err := b(Params(params))
	if err != nil {
		return nil, deskerrors.NewStepError(stepType, err)
	}
	return s, nil
}

// Types lists the registered step types in sorted order.
func Types() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ResetRegistry clears registrations (for tests).
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Builder)
}
