package playground

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCommand returns the playground root command.
func NewCommand() *cobra.Command {
	cfg := DefaultConfig()
	var verbose bool

	cmd := &cobra.Command{
		Use:          "playground",
		Short:        "Sort fake users by email with asyncslice.Sort",
		Long:         "Generates fake users and sorts them by email, awaiting every comparison one at a time.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
				cfg.Logger = logger
			}
			return Run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().IntVarP(&cfg.Count, "count", "n", cfg.Count, "number of users to generate")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 uses the clock)")
	cmd.Flags().StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used to compare emails")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every comparison to stderr")

	return cmd
}
