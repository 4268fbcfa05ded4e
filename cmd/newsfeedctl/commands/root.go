package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsfeed-service/internal/adapters/secondary/nytimes"
	"newsfeed-service/internal/adapters/secondary/rawstore"
	"newsfeed-service/internal/config"
)

var (
	rawDir string
	wire   *nytimes.Client
)

func Execute() error {
	root := &cobra.Command{
		Use:          "newsfeedctl",
		Short:        "One-shot operations against the NYT news wire",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.NYTimes.APIKey == "" {
				return fmt.Errorf("NYT_API_KEY is required")
			}

			var opts []nytimes.Option
			if rawDir != "" {
				raw, err := rawstore.New(rawDir, nil)
				if err != nil {
					return err
				}
				opts = append(opts, nytimes.WithRawStore(raw))
			}
			wire = nytimes.NewClient(&cfg.NYTimes, opts...)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rawDir, "raw-dir", "", "directory for raw JSON snapshots (disabled when empty)")

	root.AddCommand(fetchCmd(), latestCmd(), sectionsCmd(), popularCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
