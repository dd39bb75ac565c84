// Package cmd implements the line-oriented batch front end for the solver.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmcclean/agum/logger"
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "agum [file ...]",
	Short: "Unification and matching in Abelian groups",
	Long: `agum reads one equation per line and prints, for each, the canonical
form of the problem followed by a most general unifier and a most general
matcher, or a line describing why none exists.

Equations are written additively, for example:

    2x + y = 3z
    64x = 41y + 1

Malformed or unsolvable lines are reported and do not stop the batch. With
no arguments the equations are read from standard input.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if quiet {
			logger.Disable()
		}
		if len(args) == 0 {
			return solveBatch(cmd.InOrStdin(), cmd.OutOrStdout())
		}
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			err = solveBatch(f, cmd.OutOrStdout())
			f.Close()
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "disable diagnostic logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
