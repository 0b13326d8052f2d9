package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e30n3/freon/internal/refrigerant"
)

func (a *app) substancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "substances",
		Short: "List the refrigerants and their tabulated temperature span",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, k := range refrigerant.Kinds() {
				f, err := refrigerant.New(k, 0)
				if err != nil {
					return err
				}
				lo, hi := f.Span()
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\t[%g; %g] degree C, %d rows\n", i, k, lo, hi, f.Table().Len())
			}
			return nil
		},
	}
}
