package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/equation/pkg/equation/literals"
)

var (
	ErrInvalidNode      = errors.New("invalid node")
	ErrUnknownOperator  = errors.New("unknown operator")
	ErrConflictingValue = errors.New("conflicting argument definition")
)

// Graph is a tree built from a document.
type Graph struct {
	Name string
	Root literals.Node
}

// Load reads a document from the given filesystem.
func Load(fs vfs.FileSystem, path string, vars map[string]string) (*Graph, error) {
	log.Debug("loading {{path}}", "path", path)
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	g, err := Decode(data, vars)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Decode substitutes variables and builds the tree described by the
// document. Variables not found in vars are taken from the environment.
func Decode(data []byte, vars map[string]string) (*Graph, error) {
	in, err := envsubst.Eval(string(data), func(k string) string {
		if v, ok := vars[k]; ok {
			return v
		}
		return os.Getenv(k)
	})
	if err != nil {
		return nil, err
	}

	var doc Document
	err = yaml.Unmarshal([]byte(in), &doc)
	if err != nil {
		return nil, err
	}
	root, err := doc.Build()
	if err != nil {
		return nil, err
	}
	return &Graph{Name: doc.Name, Root: root}, nil
}

// Build creates the tree described by the document.
func (d *Document) Build() (literals.Node, error) {
	if d.Equation == nil {
		return nil, fmt.Errorf("%w: equation: missing", ErrInvalidNode)
	}
	b := &builder{
		args:     map[string]*literals.Argument{},
		explicit: map[string]bool{},
	}
	return b.node("equation", d.Equation)
}

type builder struct {
	args     map[string]*literals.Argument
	explicit map[string]bool
}

func (b *builder) node(path string, n *Node) (literals.Node, error) {
	switch {
	case n == nil:
		return nil, fmt.Errorf("%w: %s: missing", ErrInvalidNode, path)
	case n.Argument != nil && n.Operator != "":
		return nil, fmt.Errorf("%w: %s: either operator or argument required", ErrInvalidNode, path)
	case n.Argument != nil:
		if len(n.Args) > 0 {
			return nil, fmt.Errorf("%w: %s: argument cannot have args", ErrInvalidNode, path)
		}
		return b.argument(path+".argument", n.Argument)
	case n.Operator != "":
		return b.operator(path, n)
	default:
		return nil, fmt.Errorf("%w: %s: operator or argument required", ErrInvalidNode, path)
	}
}

func (b *builder) operator(path string, n *Node) (literals.Node, error) {
	f, ok := literals.Lookup(n.Operator)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %q", ErrUnknownOperator, path, n.Operator)
	}
	op := f()
	for i, a := range n.Args {
		p := fmt.Sprintf("%s.args[%d]", path, i)
		c, err := b.node(p, a)
		if err != nil {
			return nil, err
		}
		err = op.AddChild(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return op, nil
}

func (b *builder) argument(path string, a *Argument) (literals.Node, error) {
	var value float64
	var integer bool

	if a.Value != "" {
		v, err := a.Value.Float64()
		if err != nil {
			return nil, fmt.Errorf("%s: invalid value %q: %w", path, a.Value, err)
		}
		value = v
		integer = a.Value.IsInteger()
	}

	if a.Name == "" {
		return &literals.Argument{Value: value, Const: a.Const, Integer: integer}, nil
	}

	if old := b.args[a.Name]; old != nil {
		if old.Const != a.Const {
			return nil, fmt.Errorf("%w: %s: %q", ErrConflictingValue, path, a.Name)
		}
		if a.Value != "" {
			if b.explicit[a.Name] {
				if old.Value != value {
					return nil, fmt.Errorf("%w: %s: %q", ErrConflictingValue, path, a.Name)
				}
			} else {
				old.Value, old.Integer = value, integer
				b.explicit[a.Name] = true
			}
		}
		return old, nil
	}
	arg := &literals.Argument{Name: a.Name, Value: value, Const: a.Const, Integer: integer}
	b.args[a.Name] = arg
	b.explicit[a.Name] = a.Value != ""
	return arg, nil
}
