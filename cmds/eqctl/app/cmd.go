package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/equation/pkg/document"
	"github.com/mandelsoft/equation/pkg/utils"
)

var REALM = logging.DefineRealm("equation/eqctl", "equation command line tool")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

type Options struct {
	fs    vfs.FileSystem
	cfg   *Config
	level string
	vars  []string
}

// Vars returns the document variables. Variables given on
// the command line override configured ones.
func (o *Options) Vars() (map[string]string, error) {
	vars := map[string]string{}
	for k, v := range o.cfg.Vars {
		vars[k] = v
	}
	for _, e := range o.vars {
		k, v, ok := strings.Cut(e, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid variable %q, expected <name>=<value>", e)
		}
		vars[k] = v
	}
	return vars, nil
}

// Load reads the document with the given path, "-" is used for stdin.
func (o *Options) Load(cmd *cobra.Command, path string) (*document.Graph, error) {
	vars, err := o.Vars()
	if err != nil {
		return nil, err
	}
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return document.Decode(data, vars)
	}
	return document.Load(o.fs, path, vars)
}

func (o *Options) setupLogging() error {
	l, err := logging.ParseLevel(o.level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", o.level)
	}
	logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("equation")))
	log.Debug("log level {{level}}", "level", o.level)
	return nil
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}
	opts.cfg = GetConfig(opts.fs)
	opts.level = *opts.cfg.LogLevel

	maincmd := &cobra.Command{
		Use:   "eqctl <options> <cmd> <args>",
		Short: "work with equation documents",
		Long: `
This command can be used to inspect, validate and evaluate
equations described by equation documents.
`,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
	}
	maincmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return opts.setupLogging() }

	flags := maincmd.PersistentFlags()

	flags.StringVarP(&opts.level, "log-level", "L", opts.level, "log level")
	flags.StringArrayVarP(&opts.vars, "var", "D", nil, "document variable <name>=<value>")

	maincmd.AddCommand(NewPrint(opts))
	maincmd.AddCommand(NewArgs(opts))
	maincmd.AddCommand(NewValidate(opts))
	maincmd.AddCommand(NewEval(opts))
	maincmd.AddCommand(NewHash(opts))
	maincmd.AddCommand(NewOperators(opts))
	return maincmd
}
