package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance scenario: an ordered list of named
// constructions and the facts asserted over them.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// Defs are evaluated in order; each may reference earlier names.
	Defs []Def `yaml:"defs"`

	// Asserts are checked after all defs are bound.
	Asserts []Assert `yaml:"asserts"`
}

// Def binds a name to a value. Exactly one of Construct, FromFloat or Op
// must be set; the schema enforces the shape of each.
type Def struct {
	Name      string     `yaml:"name"`
	Construct *Construct `yaml:"construct,omitempty"`
	FromFloat *float64   `yaml:"from_float,omitempty"`
	Op        *Op        `yaml:"op,omitempty"`
}

// Construct names the left and right option sets by reference.
type Construct struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// Op applies an engine operation to previously bound names.
type Op struct {
	Kind string   `yaml:"kind"` // add | sub | neg | mul | rem
	Args []string `yaml:"args"`
}

// Assert is a single checked fact.
type Assert struct {
	Kind      string     `yaml:"kind"` // eq | lt | leq | float | malformed
	Args      []string   `yaml:"args,omitempty"`
	Value     *float64   `yaml:"value,omitempty"`
	Construct *Construct `yaml:"construct,omitempty"`
}

// LoadScenario reads, schema-validates and decodes one scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := validateScenario(raw); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarioDir loads every *.yaml scenario in dir, sorted by filename
// for a deterministic run order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
