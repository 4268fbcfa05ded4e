package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func latestCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Fetch the latest wire articles across all sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := wire.Latest(cmd.Context(), limit)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(articles)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum results per page (up to 500)")
	return cmd
}
