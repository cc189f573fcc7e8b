// Package equation provides a callable equation based on a
// validated equation tree.
package equation

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/equation/pkg/equation/literals"
	"github.com/mandelsoft/equation/pkg/equation/visitors"
	"github.com/mandelsoft/equation/pkg/utils"
)

var (
	ErrUnknownArgument   = errors.New("unknown argument")
	ErrDuplicateArgument = errors.New("duplicate argument name")
	ErrTooManyValues     = errors.New("too many values")
)

// Equation holds a tree and gives access to its free arguments.
// Values assigned to arguments are kept in the tree, so a later
// call uses the most recent values.
type Equation struct {
	root      literals.Node
	args      []*literals.Argument
	names     map[string]*literals.Argument
	evaluator *visitors.Evaluator
}

// New creates an equation for the given tree. The tree must be
// complete, it is validated here.
func New(root literals.Node) (*Equation, error) {
	v := visitors.NewValidator()
	v.Validate(root)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("tree %s: %w", root, err)
	}

	args := Unique(visitors.FindArgs(root, false))
	names := map[string]*literals.Argument{}
	for _, a := range args {
		if !a.HasName() {
			continue
		}
		if _, ok := names[a.Name]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateArgument, a.Name)
		}
		names[a.Name] = a
	}

	e := &Equation{
		root:      root,
		args:      args,
		names:     names,
		evaluator: visitors.NewEvaluator(),
	}
	log.Debug("created equation {{equation}} with {{amount}} free arguments", "equation", e, "amount", len(args))
	return e, nil
}

func (e *Equation) Root() literals.Node {
	return e.root
}

// Args returns the non-constant arguments in order of
// their first occurrence.
func (e *Equation) Args() []*literals.Argument {
	return e.args
}

func (e *Equation) Arg(name string) (*literals.Argument, error) {
	a := e.names[name]
	if a == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownArgument, name)
	}
	return a, nil
}

func (e *Equation) String() string {
	return visitors.Render(e.root)
}

// Call assigns the given values to the arguments in the
// order given by Args and evaluates the equation.
func (e *Equation) Call(values ...float64) (float64, error) {
	if len(values) > len(e.args) {
		return 0, fmt.Errorf("%w: %d given, but %d arguments", ErrTooManyValues, len(values), len(e.args))
	}
	for i, v := range values {
		e.args[i].SetValue(v)
	}
	return e.Evaluate()
}

// CallNamed assigns values by argument name and evaluates the equation.
// No value is assigned if any name is unknown.
func (e *Equation) CallNamed(values map[string]float64) (float64, error) {
	for n := range values {
		if e.names[n] == nil {
			return 0, fmt.Errorf("%w %q", ErrUnknownArgument, n)
		}
	}
	for n, v := range values {
		e.names[n].SetValue(v)
	}
	return e.Evaluate()
}

// Evaluate evaluates the equation with the current argument values.
func (e *Equation) Evaluate() (float64, error) {
	return e.evaluator.Evaluate(e.root)
}

type fingerprint struct {
	Equation  string    `json:"equation"`
	Arguments []float64 `json:"arguments"`
}

// Fingerprint returns a hash for the rendered equation and the current
// values of its free arguments.
func (e *Equation) Fingerprint() (string, error) {
	f := fingerprint{Equation: e.String()}
	for _, a := range e.args {
		f.Arguments = append(f.Arguments, a.Value)
	}
	return utils.Hash(f)
}

// Unique removes repeated occurrences of the same argument instance
// keeping the order of first occurrence.
func Unique(args []*literals.Argument) []*literals.Argument {
	var result []*literals.Argument

	found := sets.New[*literals.Argument]()
	for _, a := range args {
		if !found.Has(a) {
			found.Insert(a)
			result = append(result, a)
		}
	}
	return result
}
