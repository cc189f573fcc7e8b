package visitors

import (
	"strings"

	"github.com/mandelsoft/equation/pkg/equation/literals"
)

// Printer renders a tree into a single line.
//
// Binary operators with a symbol different from their name are
// rendered infix and always enclosed in parentheses, e.g. "(x + y)".
// All other operators use the function call notation
// "name(arg0, arg1, ...)", which is "name()" for operators without
// arguments.
// Arguments are rendered by their name, or by their value if unnamed.
// Values always show a decimal point or exponent, except for
// arguments flagged as Integer.
type Printer struct {
	output strings.Builder
}

var _ literals.Visitor[string] = (*Printer)(nil)

func NewPrinter() *Printer {
	return &Printer{}
}

// Render returns the textual representation of a tree.
func Render(root literals.Node) string {
	return NewPrinter().Render(root)
}

func (p *Printer) Reset() {
	p.output.Reset()
}

func (p *Printer) Output() string {
	return p.output.String()
}

// Render resets the printer and renders the given tree.
func (p *Printer) Render(root literals.Node) string {
	p.Reset()
	return literals.Accept[string](root, p)
}

func (p *Printer) VisitArgument(a *literals.Argument) string {
	if a.HasName() {
		p.output.WriteString(a.Name)
	} else {
		p.output.WriteString(FormatArgument(a))
	}
	return p.output.String()
}

func (p *Printer) VisitOperator(o *literals.Operator) string {
	if o.Arity == 2 && o.Name != o.Symbol {
		return p.infix(o)
	}

	p.output.WriteString(o.Name)
	p.output.WriteString("(")
	for i, c := range o.Children {
		if i != 0 {
			p.output.WriteString(", ")
		}
		literals.Accept[string](c, p)
	}
	p.output.WriteString(")")
	return p.output.String()
}

// infix expects two children. Fewer children is a malformed
// tree and results in an index panic.
func (p *Printer) infix(o *literals.Operator) string {
	p.output.WriteString("(")
	literals.Accept[string](o.Children[0], p)
	p.output.WriteString(" " + o.Symbol + " ")
	literals.Accept[string](o.Children[1], p)
	p.output.WriteString(")")
	return p.output.String()
}
