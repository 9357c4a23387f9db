package harness

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders a result as a deterministic plain-text block suitable for
// golden-file comparison. Bindings appear in definition order; float
// projections use the shortest representation that round-trips.
func Snapshot(r *Result) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario)
	for _, bind := range r.Bindings {
		fmt.Fprintf(&b, "%s = %s = %s\n",
			bind.Name, bind.Structure, strconv.FormatFloat(bind.Value, 'g', -1, 64))
	}
	fmt.Fprintf(&b, "asserts: %d passed, %d failed\n",
		r.Asserts-len(r.Failures), len(r.Failures))
	return []byte(b.String())
}

// RunWithGolden executes a scenario and compares the snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario itself cannot be evaluated. Assertion
// failures and snapshot mismatches fail the test via t.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, f := range result.Failures {
		t.Errorf("scenario %s: %s", scenario.Name, f)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, Snapshot(result))
	return nil
}
