package main

import (
	"github.com/spf13/cobra"

	"paramdoc/internal/manifest"
)

func newManifestCmd(a *app) *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "manifest <file>",
		Short: "Reconcile the declarations of a YAML manifest",
		Long: `manifest reads a YAML declaration manifest produced by an external
parser, reconciles each declaration, and reports the result. With --write the
reconciled manifest is written back out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := manifest.LoadFile(args[0])
			if err != nil {
				return err
			}

			entities := f.Entities()
			res, runErr := a.reconcile(cmd, entities)
			if res == nil || write == "" {
				return runErr
			}

			if err := f.Update(res.Entities); err != nil {
				return err
			}

			if err := manifest.WriteFile(f, write); err != nil {
				return err
			}

			a.log.Info().Str("path", write).Msg("Wrote reconciled manifest")

			return runErr
		},
	}

	cmd.Flags().StringVarP(&write, "write", "w", "", "write the reconciled manifest to this path")

	return cmd
}
