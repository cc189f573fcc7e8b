package app_test

import (
	"bytes"
	"errors"
	"strings"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	. "github.com/mandelsoft/equation/pkg/testutils"

	"github.com/mandelsoft/equation/cmds/eqctl/app"
	"github.com/mandelsoft/equation/pkg/equation/visitors"
)

const gauss = `
name: gauss
equation:
  operator: multiply
  args:
  - argument: {name: A, value: 2}
  - operator: exp
    args:
    - operator: divide
      args:
      - operator: negative
        args:
        - operator: power
          args:
          - operator: subtract
            args:
            - argument: {name: x}
            - argument: {name: x0, value: ${CENTER}}
          - argument: {value: 2, const: true}
      - argument: {name: w, value: 1}
`

const broken = `
equation:
  operator: add
  args:
  - argument: {name: x}
`

var _ = Describe("eqctl", func() {
	var fs vfs.FileSystem
	var cmd *cobra.Command
	var buf *bytes.Buffer

	run := func(args ...string) error {
		cmd.SetOut(buf)
		cmd.SetErr(buf)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	BeforeEach(func() {
		fs = memoryfs.New()
		MustBeSuccessful(vfs.WriteFile(fs, "gauss.yaml", []byte(gauss), 0o600))
		MustBeSuccessful(vfs.WriteFile(fs, "broken.yaml", []byte(broken), 0o600))
		buf = bytes.NewBuffer(nil)
		cmd = app.New(fs)
	})

	It("prints", func() {
		MustBeSuccessful(run("-D", "CENTER=0", "print", "gauss.yaml"))
		Expect(buf.String()).To(Equal("(A * exp((negative(((x - x0) ** 2)) / w)))\n"))
	})

	It("reads stdin", func() {
		cmd.SetIn(strings.NewReader(`{"equation":{"operator":"add","args":[{"argument":{"name":"a"}},{"argument":{"name":"b"}}]}}`))
		MustBeSuccessful(run("print", "-"))
		Expect(buf.String()).To(Equal("(a + b)\n"))
	})

	It("lists free arguments", func() {
		MustBeSuccessful(run("-D", "CENTER=0.5", "args", "gauss.yaml"))
		Expect("\n" + buf.String()).To(Equal(`
NAME VALUE CONST
A    2     false
x    0.0   false
x0   0.5   false
w    1     false
`))
	})

	It("lists all arguments", func() {
		MustBeSuccessful(run("-D", "CENTER=0.5", "args", "--all", "gauss.yaml"))
		Expect(buf.String()).To(ContainSubstring("-    2     true\n"))
	})

	It("validates", func() {
		MustBeSuccessful(run("-D", "CENTER=0", "validate", "gauss.yaml"))
		Expect(buf.String()).To(Equal("valid\n"))

		buf.Reset()
		err := run("validate", "broken.yaml")
		Expect(errors.Is(err, visitors.ErrInvalidTree)).To(BeTrue())
		Expect(buf.String()).To(ContainSubstring("'Operator(add)' requires 2 inputs but receives 1\n"))
	})

	It("evaluates", func() {
		MustBeSuccessful(run("-D", "CENTER=1", "eval", "-a", "x=1", "gauss.yaml"))
		Expect(buf.String()).To(Equal("2\n"))
	})

	It("rejects unknown arguments", func() {
		err := run("-D", "CENTER=1", "eval", "-a", "y=1", "gauss.yaml")
		Expect(err).To(MatchError(ContainSubstring(`unknown argument "y"`)))
	})

	It("hashes", func() {
		MustBeSuccessful(run("-D", "CENTER=1", "hash", "gauss.yaml"))
		h := buf.String()
		Expect(h).To(HaveLen(65))

		buf.Reset()
		cmd = app.New(fs)
		MustBeSuccessful(run("-D", "CENTER=2", "hash", "gauss.yaml"))
		Expect(buf.String()).NotTo(Equal(h))
	})

	It("lists operators", func() {
		MustBeSuccessful(run("operators"))
		Expect(buf.String()).To(ContainSubstring("add      +       2\n"))
		Expect(buf.String()).To(ContainSubstring("sum      sum     *\n"))
	})

	It("uses configured variables", func() {
		MustBeSuccessful(vfs.WriteFile(fs, app.CONFIG_FILE, []byte("vars:\n  CENTER: \"3\"\n"), 0o600))
		cmd = app.New(fs)
		MustBeSuccessful(run("eval", "-a", "x=3", "gauss.yaml"))
		Expect(buf.String()).To(Equal("2\n"))
	})

	It("requires a file", func() {
		Expect(run("print")).To(MatchError("exactly one document file required"))
	})

	It("rejects invalid variables", func() {
		Expect(run("-D", "CENTER", "print", "gauss.yaml")).To(MatchError(`invalid variable "CENTER", expected <name>=<value>`))
	})
})
