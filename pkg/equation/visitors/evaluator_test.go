package visitors_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/equation/pkg/testutils"

	"github.com/mandelsoft/equation/pkg/equation/literals"
	me "github.com/mandelsoft/equation/pkg/equation/visitors"
)

var _ = Describe("Evaluator", func() {
	var e *me.Evaluator

	BeforeEach(func() {
		e = me.NewEvaluator()
	})

	It("evaluates arguments", func() {
		Expect(Must(e.Evaluate(x()))).To(Equal(1.0))
	})

	It("evaluates trees", func() {
		t := literals.Multiply(literals.Add(x(), y()), literals.NewIntConstant(2))
		Expect(Must(e.Evaluate(t))).To(Equal(6.0))
	})

	It("evaluates functions", func() {
		t := literals.Hypot(literals.NewConstant(3), literals.Sqrt(literals.NewConstant(16)))
		Expect(Must(e.Evaluate(t))).To(Equal(5.0))
		Expect(Must(e.Evaluate(literals.Sum()))).To(Equal(0.0))
		Expect(Must(e.Evaluate(literals.Cos(literals.NewConstant(math.Pi))))).To(BeNumerically("~", -1.0, 1e-12))
	})

	It("uses current values", func() {
		a := x()
		t := literals.Power(a, literals.NewIntConstant(2))
		Expect(Must(e.Evaluate(t))).To(Equal(1.0))
		a.SetValue(3)
		Expect(Must(e.Evaluate(t))).To(Equal(9.0))
	})

	It("fails for missing operation", func() {
		_, err := e.Evaluate(literals.NewOperator("f", "f", 1, nil, x()))
		Expect(errors.Is(err, me.ErrEvaluation)).To(BeTrue())
		MustFailWithMessage(err, "cannot evaluate: 'Operator(f)' does not define an operation")
	})

	It("fails for wrong input count", func() {
		_, err := e.Evaluate(literals.Add(literals.Sin(x()), literals.Sin(x(), y())))
		MustFailWithMessage(err, "cannot evaluate: 'Operator(sin)' requires 1 inputs but has 2")
	})

	It("resets errors", func() {
		_, err := e.Evaluate(literals.Add(x()))
		Expect(err).To(HaveOccurred())
		Expect(Must(e.Evaluate(literals.Add(x(), y())))).To(Equal(3.0))
		Expect(e.Err()).To(BeNil())
	})
})
