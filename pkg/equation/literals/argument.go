package literals

import (
	"math"
	"strconv"
)

// Argument is a leaf of an equation tree. It is either a free
// parameter or a constant. A constant argument may be unnamed;
// its identity then is its value.
// Integer marks a value given as integer literal, it is rendered
// without fractional part.
type Argument struct {
	Name    string
	Value   float64
	Const   bool
	Integer bool
}

var _ Node = (*Argument)(nil)

// NewArgument creates a free (refinable) argument.
func NewArgument(name string, value float64) *Argument {
	return &Argument{Name: name, Value: value}
}

// NewConstant creates an unnamed constant argument.
func NewConstant(value float64) *Argument {
	return &Argument{Value: value, Const: true}
}

// NewIntConstant creates an unnamed integer constant.
func NewIntConstant(value int64) *Argument {
	return &Argument{Value: float64(value), Const: true, Integer: true}
}

// NewNamedConstant creates a constant argument with a name.
func NewNamedConstant(name string, value float64) *Argument {
	return &Argument{Name: name, Value: value, Const: true}
}

func (a *Argument) literal() {}

func (a *Argument) Kind() Kind {
	return KIND_ARGUMENT
}

func (a *Argument) HasName() bool {
	return a.Name != ""
}

// SetValue updates the value and reports whether it changed.
// It must not be called while the tree is traversed.
func (a *Argument) SetValue(v float64) bool {
	if a.Value == v {
		return false
	}
	a.Value = v
	if a.Integer && math.Trunc(v) != v {
		a.Integer = false
	}
	return true
}

func (a *Argument) String() string {
	if a.HasName() {
		return "Argument(" + a.Name + ")"
	}
	return "Argument(" + strconv.FormatFloat(a.Value, 'g', -1, 64) + ")"
}
