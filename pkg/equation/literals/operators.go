package literals

import (
	"math"
	"slices"
	"strings"
	"sync"
)

// Factory creates a fresh operator node with the given children.
type Factory func(children ...Node) *Operator

func binary(name, symbol string, op func(a, b float64) float64) Factory {
	return func(children ...Node) *Operator {
		return NewOperator(name, symbol, 2, func(args ...float64) float64 { return op(args[0], args[1]) }, children...)
	}
}

func unary(name, symbol string, op func(a float64) float64) Factory {
	return func(children ...Node) *Operator {
		return NewOperator(name, symbol, 1, func(args ...float64) float64 { return op(args[0]) }, children...)
	}
}

func function(name string, op func(a float64) float64) Factory {
	return unary(name, name, op)
}

////////////////////////////////////////////////////////////////////////////////
// arithmetic

var (
	Add      = binary("add", "+", func(a, b float64) float64 { return a + b })
	Subtract = binary("subtract", "-", func(a, b float64) float64 { return a - b })
	Multiply = binary("multiply", "*", func(a, b float64) float64 { return a * b })
	Divide   = binary("divide", "/", func(a, b float64) float64 { return a / b })
	Power    = binary("power", "**", math.Pow)
	Mod      = binary("mod", "%", floorMod)
	Negative = unary("negative", "-", func(a float64) float64 { return -a })
)

// floorMod returns the remainder with the sign of the divisor.
func floorMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

////////////////////////////////////////////////////////////////////////////////
// functions, name and symbol are identical

var (
	Sin   = function("sin", math.Sin)
	Cos   = function("cos", math.Cos)
	Tan   = function("tan", math.Tan)
	Exp   = function("exp", math.Exp)
	Log   = function("log", math.Log)
	Sqrt  = function("sqrt", math.Sqrt)
	Abs   = function("abs", math.Abs)
	Hypot = binary("hypot", "hypot", math.Hypot)
	Atan2 = binary("arctan2", "arctan2", math.Atan2)
)

func Sum(children ...Node) *Operator {
	return NewOperator("sum", "sum", VARIADIC, func(args ...float64) float64 {
		s := 0.0
		for _, a := range args {
			s += a
		}
		return s
	}, children...)
}

////////////////////////////////////////////////////////////////////////////////

var (
	lock     sync.RWMutex
	registry = map[string]Factory{}
)

func init() {
	for _, f := range []Factory{
		Add, Subtract, Multiply, Divide, Power, Mod, Negative,
		Sin, Cos, Tan, Exp, Log, Sqrt, Abs, Hypot, Atan2, Sum,
	} {
		Register(f().Name, f)
	}
}

// Register adds a named operator factory to the registry
// used to construct trees from descriptions.
func Register(name string, f Factory) {
	lock.Lock()
	defer lock.Unlock()
	registry[strings.ToLower(name)] = f
}

func Lookup(name string) (Factory, bool) {
	lock.RLock()
	defer lock.RUnlock()
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

func Operators() []string {
	lock.RLock()
	defer lock.RUnlock()

	var names []string
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
