package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func fetchCmd() *cobra.Command {
	var (
		source  string
		section string
		limit   int
		offset  int
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch wire articles for a source/section pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := wire.Content(cmd.Context(), source, section, limit, offset)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(articles)
		},
	}

	cmd.Flags().StringVar(&source, "source", "all", "source filter (all, nyt, inyt)")
	cmd.Flags().StringVar(&section, "section", "all", "section filter (arts, business, ...)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum results per page (up to 500)")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	return cmd
}
