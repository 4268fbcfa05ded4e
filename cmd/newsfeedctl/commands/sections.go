package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func sectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "Fetch the wire section list",
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := wire.SectionList(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sections)
		},
	}
}
