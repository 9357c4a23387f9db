package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/surreal"
)

// Result captures a scenario execution: the values bound by its defs, in
// definition order, and the assertion failures (empty on success).
type Result struct {
	Scenario string
	Bindings []Binding
	Asserts  int
	Failures []string
}

// Binding is one named value with its deterministic projections.
type Binding struct {
	Name      string
	Structure string
	Value     float64
}

// Passed reports whether every assertion held.
func (r *Result) Passed() bool { return len(r.Failures) == 0 }

// Run executes a scenario against a fresh universe.
//
// A def that cannot be evaluated (unknown reference, rejected construction,
// wrong operand count) is an error: the scenario itself is broken. A failed
// assertion is not an error; it lands in Result.Failures.
func Run(s *Scenario) (*Result, error) {
	u := surreal.NewUniverse()
	env := make(map[string]surreal.Number, len(s.Defs))
	result := &Result{Scenario: s.Name}

	for _, d := range s.Defs {
		x, err := evalDef(u, env, d)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: def %s: %w", s.Name, d.Name, err)
		}
		env[d.Name] = x
		result.Bindings = append(result.Bindings, Binding{
			Name:      d.Name,
			Structure: x.String(),
			Value:     x.Float(),
		})
	}

	result.Asserts = len(s.Asserts)
	for i, a := range s.Asserts {
		if err := checkAssert(u, env, a); err != nil {
			result.Failures = append(result.Failures, fmt.Sprintf("assert %d (%s): %v", i, a.Kind, err))
		}
	}

	slog.Debug("scenario finished",
		"scenario", s.Name,
		"bindings", len(result.Bindings),
		"failures", len(result.Failures),
		"structures", u.Size())
	return result, nil
}

func evalDef(u *surreal.Universe, env map[string]surreal.Number, d Def) (surreal.Number, error) {
	switch {
	case d.Construct != nil:
		left, err := resolveRefs(env, d.Construct.Left)
		if err != nil {
			return surreal.Number{}, err
		}
		right, err := resolveRefs(env, d.Construct.Right)
		if err != nil {
			return surreal.Number{}, err
		}
		return u.New(left, right)

	case d.FromFloat != nil:
		return u.FromFloat(*d.FromFloat), nil

	case d.Op != nil:
		return evalOp(env, *d.Op)

	default:
		return surreal.Number{}, fmt.Errorf("def has no construct, from_float or op")
	}
}

func evalOp(env map[string]surreal.Number, op Op) (surreal.Number, error) {
	args, err := resolveRefs(env, op.Args)
	if err != nil {
		return surreal.Number{}, err
	}

	if op.Kind == "neg" {
		if len(args) != 1 {
			return surreal.Number{}, fmt.Errorf("neg takes 1 argument, got %d", len(args))
		}
		return args[0].Neg(), nil
	}

	if len(args) != 2 {
		return surreal.Number{}, fmt.Errorf("%s takes 2 arguments, got %d", op.Kind, len(args))
	}
	switch op.Kind {
	case "add":
		return args[0].Add(args[1]), nil
	case "sub":
		return args[0].Sub(args[1]), nil
	case "mul":
		return args[0].Mul(args[1]), nil
	case "rem":
		return args[0].RemChecked(args[1])
	default:
		return surreal.Number{}, fmt.Errorf("unknown op kind %q", op.Kind)
	}
}

func checkAssert(u *surreal.Universe, env map[string]surreal.Number, a Assert) error {
	switch a.Kind {
	case "eq", "lt", "leq":
		if len(a.Args) != 2 {
			return fmt.Errorf("%s takes 2 arguments, got %d", a.Kind, len(a.Args))
		}
		args, err := resolveRefs(env, a.Args)
		if err != nil {
			return err
		}
		x, y := args[0], args[1]
		switch {
		case a.Kind == "eq" && !x.Eq(y):
			return fmt.Errorf("%s = %s is not equal to %s = %s", a.Args[0], x, a.Args[1], y)
		case a.Kind == "lt" && !x.Less(y):
			return fmt.Errorf("%s = %s is not below %s = %s", a.Args[0], x, a.Args[1], y)
		case a.Kind == "leq" && !x.LessEq(y):
			return fmt.Errorf("%s = %s is not less-or-equal %s = %s", a.Args[0], x, a.Args[1], y)
		}
		return nil

	case "float":
		if len(a.Args) != 1 || a.Value == nil {
			return fmt.Errorf("float takes 1 argument and a value")
		}
		args, err := resolveRefs(env, a.Args)
		if err != nil {
			return err
		}
		if got := args[0].Float(); got != *a.Value {
			return fmt.Errorf("%s projects to %v, want %v", a.Args[0], got, *a.Value)
		}
		return nil

	case "malformed":
		if a.Construct == nil {
			return fmt.Errorf("malformed takes a construct")
		}
		left, err := resolveRefs(env, a.Construct.Left)
		if err != nil {
			return err
		}
		right, err := resolveRefs(env, a.Construct.Right)
		if err != nil {
			return err
		}
		if _, err := u.New(left, right); !surreal.IsWellFormingError(err) {
			return fmt.Errorf("construction was not rejected (err=%v)", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown assert kind %q", a.Kind)
	}
}

func resolveRefs(env map[string]surreal.Number, names []string) ([]surreal.Number, error) {
	out := make([]surreal.Number, len(names))
	for i, n := range names {
		x, ok := env[n]
		if !ok {
			return nil, fmt.Errorf("unknown name %q", n)
		}
		out[i] = x
	}
	return out, nil
}
