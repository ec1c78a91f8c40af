package main

import (
	"fmt"
	"strings"

	"careerguide/internal/config"

	"github.com/spf13/cobra"
)

func matchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match INTEREST...",
		Short: "Ranks careers by the given interests",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			limit, _ := cmd.Flags().GetInt("limit")

			guide, err := offlineGuide(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			matches, err := guide.FindCareersByInterests(ctx, args, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "no matching careers")

				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(out, "%d  %s (%s)  %s\n", m.Score, m.Career.Name, m.Career.Stream,
					strings.Join(m.MatchedInterests, ", "))
			}

			return nil
		},
	}
	cmd.Flags().Int("limit", 10, "Maximum number of careers, 0 for all")
	cmd.Flags().String("file", "", "Dataset file to use instead of the configured one")

	return cmd
}
