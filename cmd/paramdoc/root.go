package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"paramdoc/internal/config"
	"paramdoc/internal/diagnostic"
	"paramdoc/internal/docmodel"
	"paramdoc/internal/extract"
	"paramdoc/internal/logging"
	"paramdoc/internal/render"
)

// Version is set at build time.
var Version = "dev"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configFile string
	dump       bool
	showTags   bool

	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Nop}
	defaults := config.DefaultConfig()

	root := &cobra.Command{
		Use:   "paramdoc",
		Short: "Reconcile declared parameters with their @param documentation",
		Long: `paramdoc checks that every declared parameter of a function or
defined type has a typed @param tag. Declared types override documented ones,
missing tags are synthesized, and every inconsistency is reported as a warning.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./.paramdoc.yaml)")
	flags.String(config.KeyFormat, defaults.Format, "output format: "+strings.Join(config.Formats, ", "))
	flags.Bool(config.KeyStrict, defaults.Strict, "exit with an error when any warning is reported")
	flags.String(config.KeyLogLevel, defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool(config.KeyIncludeUnexported, defaults.IncludeUnexported, "also document unexported Go declarations")
	flags.Bool(config.KeyTests, defaults.Tests, "also load _test.go files")
	flags.BoolVar(&a.dump, "dump", false, "dump reconciled entities to stderr")
	flags.BoolVar(&a.showTags, "show", false, "print every declaration with its reconciled tags")

	root.AddCommand(
		newCheckCmd(a),
		newManifestCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	a.cfg, err = config.Load(v)
	if err != nil {
		return err
	}

	a.log = logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel)

	return nil
}

// reconcile runs the pipeline over entities and writes the report.
func (a *app) reconcile(cmd *cobra.Command, entities []*docmodel.Entity) (*extract.Result, error) {
	ctx := logging.WithLogger(cmd.Context(), &a.log)

	res, runErr := extract.Run(ctx, entities, extract.Options{
		Strict: a.cfg.Strict,
		Sink:   diagnostic.NewLogSink(a.log),
	})
	if res == nil {
		return nil, runErr
	}

	if a.dump {
		spew.Fdump(cmd.ErrOrStderr(), res.Entities)
	}

	if err := render.Write(cmd.OutOrStdout(), a.cfg.Format, res, render.Options{ShowTags: a.showTags}); err != nil {
		return res, err
	}

	return res, runErr
}
