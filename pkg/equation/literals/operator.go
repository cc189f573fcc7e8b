package literals

import (
	"errors"
	"fmt"
)

// VARIADIC is used as arity for operators accepting any number of inputs.
const VARIADIC = -1

var ErrTooManyArgs = errors.New("operator cannot accept more arguments")

// Operation calculates the value of an operator from the values
// of its children.
type Operation func(args ...float64) float64

// Operator is an inner node of an equation tree. It applies
// a named operation to its children in order.
// The number of children is expected to match Arity,
// but this is not enforced by the node itself.
type Operator struct {
	Name      string
	Symbol    string
	Arity     int
	Children  []Node
	Operation Operation
}

var _ Node = (*Operator)(nil)

func NewOperator(name, symbol string, arity int, op Operation, children ...Node) *Operator {
	return &Operator{
		Name:      name,
		Symbol:    symbol,
		Arity:     arity,
		Children:  children,
		Operation: op,
	}
}

func (o *Operator) literal() {}

func (o *Operator) Kind() Kind {
	return KIND_OPERATOR
}

func (o *Operator) IsVariadic() bool {
	return o.Arity < 0
}

// AddChild appends a child node. The first node added is the
// leftmost argument.
func (o *Operator) AddChild(n Node) error {
	if !o.IsVariadic() && len(o.Children) >= o.Arity {
		return fmt.Errorf("%w: %s takes %d", ErrTooManyArgs, o.Name, o.Arity)
	}
	o.Children = append(o.Children, n)
	return nil
}

func (o *Operator) String() string {
	return "Operator(" + o.Name + ")"
}
