// Package document describes equation trees as YAML or JSON documents.
//
// A document describes the structure of a tree, it is not a textual
// equation:
//
//	name: line
//	equation:
//	  operator: add
//	  args:
//	  - operator: multiply
//	    args:
//	    - argument: {name: m}
//	    - argument: {name: x}
//	  - argument: {name: b, value: ${OFFSET}, const: true}
//
// Operators are taken from the registry of package literals.
// Arguments with the same name refer to the same argument instance.
// Before decoding, variables in the form ${NAME} are substituted.
//
// Values without fractional part are decoded as integer values,
// because YAML does not preserve the difference between 2 and 2.0.
// A whole floating point value is therefore written as string ("2.0").
package document

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Document struct {
	Name     string `json:"name,omitempty"`
	Equation *Node  `json:"equation"`
}

// Node describes either an operator or an argument.
type Node struct {
	Operator string    `json:"operator,omitempty"`
	Args     []*Node   `json:"args,omitempty"`
	Argument *Argument `json:"argument,omitempty"`
}

type Argument struct {
	Name  string `json:"name,omitempty"`
	Value Value  `json:"value,omitempty"`
	Const bool   `json:"const,omitempty"`
}

// Value is the textual form of a numeric argument value.
// It accepts JSON numbers and strings containing a number.
type Value string

func (v Value) String() string {
	return string(v)
}

func (v Value) Float64() (float64, error) {
	return strconv.ParseFloat(string(v), 64)
}

// IsInteger reports whether the text denotes an integer value.
func (v Value) IsInteger() bool {
	return !strings.ContainsAny(string(v), ".eEnN")
}

func (v Value) MarshalJSON() ([]byte, error) {
	f, err := v.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", string(v), err)
	}
	if !v.IsInteger() && math.Trunc(f) == f {
		return json.Marshal(string(v))
	}
	return []byte(v), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var n json.Number
	err := json.Unmarshal(data, &n)
	if err != nil {
		return err
	}
	if _, err := n.Float64(); err != nil {
		return fmt.Errorf("invalid value %s: %w", string(data), err)
	}
	*v = Value(n)
	return nil
}
