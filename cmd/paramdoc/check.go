package main

import (
	"github.com/spf13/cobra"

	"paramdoc/internal/analyze"
	"paramdoc/internal/common"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages...]",
		Short: "Reconcile @param documentation of Go packages",
		Long: `check loads the given Go packages (default ./...) and reconciles the
@param tags in the doc comment of every exported function and method with its
parameter list. Parameters typed any or interface{} carry no type information.`,
		Example: `  paramdoc check ./...
  paramdoc check --strict --format json ./internal/...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if common.IsEmpty(args) {
				args = []string{"./..."}
			}

			a.log.Info().Strs("patterns", args).Msg("Loading packages")

			entities, err := analyze.NewAnalyzer(analyze.Config{
				IncludeUnexported: a.cfg.IncludeUnexported,
				Tests:             a.cfg.Tests,
			}).LoadPackages(args...)
			if err != nil {
				return err
			}

			_, err = a.reconcile(cmd, entities)
			return err
		},
	}
}
