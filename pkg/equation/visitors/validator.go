package visitors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mandelsoft/equation/pkg/equation/literals"
)

var ErrInvalidTree = errors.New("invalid equation tree")

// Validator checks a tree as far as possible without evaluating it.
// It verifies that every operator is completely described and that
// the number of its inputs matches its arity. Operators with a
// variadic arity accept any number of inputs.
type Validator struct {
	errors []string
	nin    int
}

var _ literals.Visitor[[]string] = (*Validator)(nil)

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Reset() {
	v.errors = nil
	v.nin = 0
}

func (v *Validator) Errors() []string {
	return v.errors
}

// Err returns an error describing all found problems, or nil.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidTree, strings.Join(v.errors, "; "))
}

// Validate resets the validator and returns the problems found for the
// given tree.
func (v *Validator) Validate(root literals.Node) []string {
	v.Reset()
	return literals.Accept[[]string](root, v)
}

func (v *Validator) VisitArgument(a *literals.Argument) []string {
	v.nin = 1
	return v.errors
}

func (v *Validator) VisitOperator(o *literals.Operator) []string {
	if o.Name == "" {
		v.errorf("'%s' does not have a name", o)
	}
	if o.Symbol == "" {
		v.errorf("'%s' does not have a symbol", o)
	}
	if o.Operation == nil {
		v.errorf("'%s' does not define an operation", o)
	}

	nin := 0
	for _, c := range o.Children {
		literals.Accept[[]string](c, v)
		nin += v.nin
	}

	if !o.IsVariadic() && nin != o.Arity {
		v.errorf("'%s' requires %d inputs but receives %d", o, o.Arity, nin)
	}
	v.nin = 1
	return v.errors
}

func (v *Validator) errorf(msg string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(msg, args...))
}
