package document

import (
	"errors"
	"fmt"
	"math"

	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/equation/pkg/equation/literals"
	"github.com/mandelsoft/equation/pkg/equation/visitors"
)

var ErrNotEncodable = errors.New("not encodable")

// Encode returns the YAML document describing the given tree.
func Encode(name string, root literals.Node) ([]byte, error) {
	doc, err := NewDocument(name, root)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// NewDocument describes an existing tree.
func NewDocument(name string, root literals.Node) (*Document, error) {
	e := &encoder{}
	n := literals.Accept[*Node](root, e)
	if e.err != nil {
		return nil, e.err
	}
	return &Document{Name: name, Equation: n}, nil
}

type encoder struct {
	err error
}

var _ literals.Visitor[*Node] = (*encoder)(nil)

func (e *encoder) VisitArgument(a *literals.Argument) *Node {
	arg := &Argument{Name: a.Name, Const: a.Const}
	switch {
	case math.IsNaN(a.Value) || math.IsInf(a.Value, 0):
		if e.err == nil {
			e.err = fmt.Errorf("%w: value %v of %s", ErrNotEncodable, a.Value, a)
		}
	case a.Value != 0 || !a.HasName():
		arg.Value = Value(visitors.FormatArgument(a))
	}
	return &Node{Argument: arg}
}

func (e *encoder) VisitOperator(o *literals.Operator) *Node {
	n := &Node{Operator: o.Name}
	for _, c := range o.Children {
		n.Args = append(n.Args, literals.Accept[*Node](c, e))
	}
	return n
}
