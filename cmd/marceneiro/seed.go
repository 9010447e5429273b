package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marceneiro/internal/seed"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inspect seed fixtures",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check [file]",
		Short: "Validate a seed file, or the built-in fixture when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := seed.Default()
			if len(args) == 1 {
				fixture, err = seed.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			tasks := 0
			for _, obra := range fixture.Obras {
				tasks += len(obra.Tarefas)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d obras, %d tarefas\n", len(fixture.Obras), tasks)
			return nil
		},
	})

	return cmd
}
