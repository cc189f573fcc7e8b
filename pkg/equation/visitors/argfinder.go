package visitors

import (
	"github.com/mandelsoft/equation/pkg/equation/literals"
)

// ArgFinder extracts the Argument leaves of a tree in traversal
// order (depth-first, left to right).
// Arguments shared by several operators are reported once per
// occurrence. Deduplication by identity is left to the caller.
type ArgFinder struct {
	getconsts bool
	args      []*literals.Argument
}

var _ literals.Visitor[[]*literals.Argument] = (*ArgFinder)(nil)

// NewArgFinder creates an ArgFinder. If getconsts is false,
// constant arguments are skipped.
func NewArgFinder(getconsts bool) *ArgFinder {
	return &ArgFinder{getconsts: getconsts}
}

// FindArgs returns the arguments found in the given tree.
func FindArgs(root literals.Node, getconsts bool) []*literals.Argument {
	return NewArgFinder(getconsts).Find(root)
}

func (f *ArgFinder) Reset() {
	f.args = nil
}

func (f *ArgFinder) Args() []*literals.Argument {
	return f.args
}

// Find resets the finder and returns the arguments of the given tree.
func (f *ArgFinder) Find(root literals.Node) []*literals.Argument {
	f.Reset()
	return literals.Accept[[]*literals.Argument](root, f)
}

func (f *ArgFinder) VisitArgument(a *literals.Argument) []*literals.Argument {
	if f.getconsts || !a.Const {
		f.args = append(f.args, a)
	}
	return f.args
}

func (f *ArgFinder) VisitOperator(o *literals.Operator) []*literals.Argument {
	for _, c := range o.Children {
		literals.Accept[[]*literals.Argument](c, f)
	}
	return f.args
}
