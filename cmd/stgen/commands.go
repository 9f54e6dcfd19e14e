package main

import (
	"fmt"
	"log/slog"

	"github.com/leijurv/stgen_go/stgen"
	"github.com/spf13/cobra"
)

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "stgen",
		Short: "Print the counter state table",
		Long: `Generate the nonstationary counter state table.

Every state holds a pair of bit counts (n0, n1) in 8 bits. The table lists,
for each reachable state, the adjusted counts get0 and get1, the next state
for each input bit when the probabilistic increment fails or succeeds, and the
probability of that increment succeeding scaled by 2^32-1.

Exit Codes:
  0  = table written
  20 = closure incomplete
  21 = more than 256 states
  22 = count out of range
  33 = write failed`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := stgen.Generate(cmd.OutOrStdout())
			if err != nil {
				logger.Error("state table generation failed", "error", err)
				return err
			}
			logger.Info("state table generated", "states", t.Len(), "passes", t.Passes)
			return nil
		},
	}
	root.AddCommand(newVerifyCmd(logger))
	return root
}

func newVerifyCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Regenerate the table and check its invariants",
		Long: `Regenerate the state table and check that every count is representable,
states are in (n0, n1) order, every transition leads to the expected state,
the state set is closed, and only saturated counts have a zero increment
probability.

Exit Codes:
  0  = all checks passed
  20 = closure incomplete
  23 = invariant violated`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := stgen.Build()
			if err == nil {
				err = stgen.Verify(t)
			}
			if err != nil {
				logger.Error("state table verification failed", "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d states, %d closure passes\n", t.Len(), t.Passes)
			return nil
		},
	}
}
