// Package harness provides conformance testing for the surreal number
// engine: scenarios define named constructions and the algebraic or order
// facts that must hold over them, and the runner executes each scenario
// against a fresh, isolated universe.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	defs:
//	  - name: zero
//	    construct: { left: [], right: [] }
//	  - name: one
//	    construct: { left: [zero], right: [] }
//	  - name: two
//	    op: { kind: add, args: [one, one] }
//	  - name: converted
//	    from_float: 2.0
//	asserts:
//	  - kind: eq
//	    args: [converted, two]
//	  - kind: float
//	    args: [two]
//	    value: 2.0
//	  - kind: malformed
//	    construct: { left: [one], right: [zero] }
//
// Defs are evaluated in order and may reference any earlier name. Op kinds
// are add, sub, neg, mul and rem.
//
// # Assertion Kinds
//
//   - eq: the two named values are mathematically equal
//   - lt: the first named value is strictly below the second
//   - leq: the first named value is less than or equal to the second
//   - float: the named value's float projection equals value exactly
//   - malformed: the inline construction is rejected by the validating
//     constructor
//
// # Schema Validation
//
// Decoded scenarios are validated against an embedded CUE schema before
// execution, so a typo in a kind or a missing field fails loading, not a
// later assertion.
//
// # Deterministic Testing
//
// Every run builds a fresh universe, so structure IDs, renderings and memo
// contents depend only on the scenario. Snapshot output is compared against
// golden files; regenerate with:
//
//	go test ./internal/harness -update
package harness
