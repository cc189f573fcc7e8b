package testutils

import (
	"math/rand"

	"github.com/goombaio/namegenerator"

	"github.com/mandelsoft/equation/pkg/equation/literals"
)

var operators = []literals.Factory{
	literals.Add, literals.Subtract, literals.Multiply, literals.Divide,
	literals.Negative, literals.Sin, literals.Exp, literals.Hypot, literals.Sum,
}

// RandomTree generates a well-formed tree of at most the given depth.
// The same seed always yields the same tree.
func RandomTree(seed int64, depth int) literals.Node {
	g := &generator{
		rnd:   rand.New(rand.NewSource(seed)),
		names: namegenerator.NewNameGenerator(seed),
	}
	return g.node(depth)
}

type generator struct {
	rnd   *rand.Rand
	names namegenerator.Generator
}

func (g *generator) node(depth int) literals.Node {
	if depth <= 0 || g.rnd.Intn(4) == 0 {
		return g.leaf()
	}
	op := operators[g.rnd.Intn(len(operators))]()
	n := op.Arity
	if op.IsVariadic() {
		n = g.rnd.Intn(4)
	}
	for i := 0; i < n; i++ {
		op.Children = append(op.Children, g.node(depth-1))
	}
	return op
}

func (g *generator) leaf() literals.Node {
	v := float64(g.rnd.Intn(2000)-1000) / 8
	switch g.rnd.Intn(3) {
	case 0:
		return literals.NewConstant(v)
	case 1:
		return literals.NewNamedConstant(g.names.Generate(), v)
	default:
		return literals.NewArgument(g.names.Generate(), v)
	}
}
