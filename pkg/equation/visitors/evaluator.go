package visitors

import (
	"errors"
	"fmt"

	"github.com/mandelsoft/equation/pkg/equation/literals"
)

var ErrEvaluation = errors.New("cannot evaluate")

// Evaluator calculates the value of a tree using the current argument
// values. Every evaluation walks the complete tree, no intermediate
// results are kept between evaluations.
type Evaluator struct {
	value float64
	err   error
}

var _ literals.Visitor[float64] = (*Evaluator)(nil)

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Reset() {
	e.value = 0
	e.err = nil
}

func (e *Evaluator) Value() float64 {
	return e.value
}

func (e *Evaluator) Err() error {
	return e.err
}

// Evaluate resets the evaluator and calculates the value of the
// given tree.
func (e *Evaluator) Evaluate(root literals.Node) (float64, error) {
	e.Reset()
	literals.Accept[float64](root, e)
	if e.err != nil {
		log.Trace("evaluation failed", "error", e.err)
		return 0, e.err
	}
	return e.value, nil
}

func (e *Evaluator) VisitArgument(a *literals.Argument) float64 {
	e.value = a.Value
	return e.value
}

func (e *Evaluator) VisitOperator(o *literals.Operator) float64 {
	if e.err != nil {
		return e.value
	}
	if o.Operation == nil {
		e.err = fmt.Errorf("%w: '%s' does not define an operation", ErrEvaluation, o)
		return e.value
	}
	if !o.IsVariadic() && len(o.Children) != o.Arity {
		e.err = fmt.Errorf("%w: '%s' requires %d inputs but has %d", ErrEvaluation, o, o.Arity, len(o.Children))
		return e.value
	}

	vals := make([]float64, len(o.Children))
	for i, c := range o.Children {
		vals[i] = literals.Accept[float64](c, e)
		if e.err != nil {
			return e.value
		}
	}
	e.value = o.Operation(vals...)
	return e.value
}
