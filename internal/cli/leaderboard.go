package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var date string
	var limit, maxClues int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if date != "" {
				params.Set("date", date)
			}
			if limit > 0 {
				params.Set("limit", fmt.Sprint(limit))
			}
			if cmd.Flags().Changed("max-clues") {
				params.Set("max_clues", fmt.Sprint(maxClues))
			}

			path := "/api/v1/leaderboard"
			if len(params) > 0 {
				path += "?" + params.Encode()
			}

			var result Leaderboard
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Game day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries to show")
	cmd.Flags().IntVar(&maxClues, "max-clues", 0, "Only entries that used at most this many clues")

	return cmd
}
