package equation_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/equation/pkg/testutils"

	me "github.com/mandelsoft/equation/pkg/equation"
	"github.com/mandelsoft/equation/pkg/equation/literals"
	"github.com/mandelsoft/equation/pkg/equation/visitors"
)

var _ = Describe("Equation", func() {
	var a, b, c *literals.Argument
	var eq *me.Equation

	BeforeEach(func() {
		a = literals.NewArgument("a", 0)
		b = literals.NewArgument("b", 0)
		c = literals.NewNamedConstant("c", 10)
		// a*b + a + c
		eq = Must(me.New(literals.Add(literals.Add(literals.Multiply(a, b), a), c)))
	})

	It("provides free arguments", func() {
		Expect(eq.Args()).To(Equal([]*literals.Argument{a, b}))
		Expect(Must(eq.Arg("b"))).To(BeIdenticalTo(b))
		_, err := eq.Arg("c")
		Expect(errors.Is(err, me.ErrUnknownArgument)).To(BeTrue())
	})

	It("renders", func() {
		Expect(eq.String()).To(Equal("(((a * b) + a) + c)"))
	})

	It("calls with positional values", func() {
		Expect(Must(eq.Call(3, 4))).To(Equal(25.0))
		Expect(Must(eq.Call(2))).To(Equal(20.0))
		Expect(b.Value).To(Equal(4.0))
	})

	It("calls with named values", func() {
		Expect(Must(eq.CallNamed(map[string]float64{"a": 1, "b": 2}))).To(Equal(13.0))
		_, err := eq.CallNamed(map[string]float64{"a": 5, "x": 2})
		Expect(errors.Is(err, me.ErrUnknownArgument)).To(BeTrue())
		Expect(a.Value).To(Equal(1.0))
	})

	It("rejects too many values", func() {
		_, err := eq.Call(1, 2, 3)
		MustFailWithMessage(err, "too many values: 3 given, but 2 arguments")
	})

	It("rejects invalid trees", func() {
		_, err := me.New(literals.Add(a))
		Expect(errors.Is(err, visitors.ErrInvalidTree)).To(BeTrue())
	})

	It("rejects ambiguous names", func() {
		_, err := me.New(literals.Add(a, literals.NewArgument("a", 1)))
		Expect(errors.Is(err, me.ErrDuplicateArgument)).To(BeTrue())
	})

	Context("fingerprint", func() {
		It("changes with values", func() {
			f1 := Must(eq.Fingerprint())
			Expect(Must(eq.Fingerprint())).To(Equal(f1))
			a.SetValue(1)
			Expect(Must(eq.Fingerprint())).NotTo(Equal(f1))
		})

		It("is equal for equal equations", func() {
			build := func() *me.Equation {
				return Must(me.New(literals.Sin(literals.Multiply(literals.NewArgument("x", 1.5), literals.NewIntConstant(2)))))
			}
			Expect(Must(build().Fingerprint())).To(Equal(Must(build().Fingerprint())))
		})
	})

	Context("unique", func() {
		It("removes repeated instances", func() {
			Expect(me.Unique([]*literals.Argument{a, b, a, c, b})).To(Equal([]*literals.Argument{a, b, c}))
		})

		It("keeps equal but distinct instances", func() {
			a2 := literals.NewArgument("a", 0)
			Expect(me.Unique([]*literals.Argument{a, a2})).To(HaveLen(2))
		})
	})
})
