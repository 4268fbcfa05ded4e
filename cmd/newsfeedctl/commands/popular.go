package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func popularCmd() *cobra.Command {
	var period int

	cmd := &cobra.Command{
		Use:   "popular [emailed|shared|viewed]",
		Short: "Fetch a Most Popular list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := wire.MostPopular(cmd.Context(), args[0], period)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(articles)
		},
	}

	cmd.Flags().IntVar(&period, "period", 7, "period in days (1, 7 or 30)")
	return cmd
}
