package app

import (
	"fmt"
	"strings"

	"glimmer/internal/core"
)

// NewSim builds the registered sim called name with the given overrides.
func NewSim(name string, overrides map[string]string) (core.Sim, error) {
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %s)", name, strings.Join(core.Names(), ", "))
	}
	return factory(overrides), nil
}
