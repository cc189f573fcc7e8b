package app

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/equation/pkg/equation"
	"github.com/mandelsoft/equation/pkg/equation/literals"
	"github.com/mandelsoft/equation/pkg/equation/visitors"
)

func oneFile(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one document file required")
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////

type Print struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewPrint(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "print the equation of a document",
	}

	c := &Print{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Print) Run(args []string) error {
	if err := oneFile(args); err != nil {
		return err
	}
	g, err := c.mainopts.Load(c.cmd, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(c.cmd.OutOrStdout(), visitors.Render(g.Root))
	return nil
}

////////////////////////////////////////////////////////////////////////////////

type Args struct {
	cmd *cobra.Command

	mainopts    *Options
	all         bool
	occurrences bool
}

func NewArgs(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "args <options> <file>",
		Short: "list the arguments of an equation",
	}

	c := &Args{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVarP(&c.all, "all", "a", false, "include constant arguments")
	flags.BoolVarP(&c.occurrences, "occurrences", "o", false, "list every occurrence of shared arguments")
	return cmd
}

func (c *Args) Run(args []string) error {
	if err := oneFile(args); err != nil {
		return err
	}
	g, err := c.mainopts.Load(c.cmd, args[0])
	if err != nil {
		return err
	}
	list := visitors.FindArgs(g.Root, c.all)
	if !c.occurrences {
		list = equation.Unique(list)
	}

	w := tabwriter.NewWriter(c.cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "NAME\tVALUE\tCONST\n")
	for _, a := range list {
		name := a.Name
		if !a.HasName() {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%t\n", name, visitors.FormatArgument(a), a.Const)
	}
	return w.Flush()
}

////////////////////////////////////////////////////////////////////////////////

type Validate struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewValidate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "validate the equation of a document",
	}

	c := &Validate{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Validate) Run(args []string) error {
	if err := oneFile(args); err != nil {
		return err
	}
	g, err := c.mainopts.Load(c.cmd, args[0])
	if err != nil {
		return err
	}
	v := visitors.NewValidator()
	errs := v.Validate(g.Root)
	for _, e := range errs {
		fmt.Fprintln(c.cmd.OutOrStdout(), e)
	}
	if len(errs) == 0 {
		fmt.Fprintln(c.cmd.OutOrStdout(), "valid")
	}
	return v.Err()
}

////////////////////////////////////////////////////////////////////////////////

type Eval struct {
	cmd *cobra.Command

	mainopts *Options
	values   []string
}

func NewEval(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <options> <file>",
		Short: "evaluate the equation of a document",
	}

	c := &Eval{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringArrayVarP(&c.values, "arg", "a", nil, "argument value <name>=<value>")
	return cmd
}

func (c *Eval) Run(args []string) error {
	if err := oneFile(args); err != nil {
		return err
	}
	values := map[string]float64{}
	for _, e := range c.values {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			return fmt.Errorf("invalid argument value %q, expected <name>=<value>", e)
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid value for argument %q: %w", k, err)
		}
		values[k] = f
	}

	g, err := c.mainopts.Load(c.cmd, args[0])
	if err != nil {
		return err
	}
	eq, err := equation.New(g.Root)
	if err != nil {
		return err
	}
	r, err := eq.CallNamed(values)
	if err != nil {
		return err
	}
	log.Debug("evaluated {{equation}}", "equation", eq)
	fmt.Fprintln(c.cmd.OutOrStdout(), strconv.FormatFloat(r, 'g', -1, 64))
	return nil
}

////////////////////////////////////////////////////////////////////////////////

type Hash struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewHash(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <file>",
		Short: "fingerprint of an equation and its argument values",
	}

	c := &Hash{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Hash) Run(args []string) error {
	if err := oneFile(args); err != nil {
		return err
	}
	g, err := c.mainopts.Load(c.cmd, args[0])
	if err != nil {
		return err
	}
	eq, err := equation.New(g.Root)
	if err != nil {
		return err
	}
	h, err := eq.Fingerprint()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.cmd.OutOrStdout(), h)
	return nil
}

////////////////////////////////////////////////////////////////////////////////

func NewOperators(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "list the known operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			fmt.Fprintf(w, "NAME\tSYMBOL\tARITY\n")
			for _, n := range literals.Operators() {
				f, _ := literals.Lookup(n)
				o := f()
				arity := strconv.Itoa(o.Arity)
				if o.IsVariadic() {
					arity = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", o.Name, o.Symbol, arity)
			}
			return w.Flush()
		},
	}
}
