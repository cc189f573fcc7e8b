package literals

import (
	"errors"
	"fmt"
)

// ErrUnsupportedNode is raised by Accept for node kinds
// not covered by the Visitor interface.
var ErrUnsupportedNode = errors.New("unsupported node kind")

type Kind string

const (
	KIND_ARGUMENT Kind = "argument"
	KIND_OPERATOR Kind = "operator"
)

// Node is a node of an equation tree. The set of implementations
// is closed: it is either an *Argument or an *Operator.
type Node interface {
	Kind() Kind
	String() string

	literal()
}

// Visitor is an algorithm working on an equation tree.
// It provides one operation per node kind. Visitors typically
// keep an accumulated result, which must be reset before the
// visitor is used for another tree.
type Visitor[R any] interface {
	VisitArgument(a *Argument) R
	VisitOperator(o *Operator) R
}

// Accept dispatches the given node to the visitor operation
// matching its kind and returns its result unchanged.
// Nodes of an unknown kind cause a panic with an error
// wrapping ErrUnsupportedNode.
func Accept[R any](n Node, v Visitor[R]) R {
	switch l := n.(type) {
	case *Argument:
		return v.VisitArgument(l)
	case *Operator:
		return v.VisitOperator(l)
	default:
		panic(fmt.Errorf("%w: %T", ErrUnsupportedNode, n))
	}
}
