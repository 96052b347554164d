// Package demos defines the demo registry.
package demos

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlid/model"
)

// ErrUnknownDemo is returned by Lookup for an unregistered name.
var ErrUnknownDemo = errors.New("demos: unknown demo")

// Demo is a named diagram builder.
type Demo struct {
	Name        string
	Description string
	Build       func() (*model.InfluenceDiagram, error)
}

var registry = map[string]Demo{
	"oil-wildcatter": {
		Name:        "oil-wildcatter",
		Description: "decide whether to test the ground, then whether to drill",
		Build:       OilWildcatter,
	},
	"observed-chain": {
		Name:        "observed-chain",
		Description: "a decision observing its only chance parent",
		Build:       ObservedChain,
	},
	"weather": {
		Name:        "weather",
		Description: "take an umbrella after reading the forecast",
		Build:       Weather,
	},
	"treatment": {
		Name:        "treatment",
		Description: "treat a patient after observing a symptom",
		Build:       Treatment,
	},
}

// All returns every demo sorted by name.
func All() []Demo {
	out := make([]Demo, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Lookup returns the demo called name.
func Lookup(name string) (Demo, error) {
	d, ok := registry[name]
	if !ok {
		return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}

	return d, nil
}
