package main

import (
	"context"
	"fmt"

	"careerguide/internal/careermap"
	"careerguide/internal/config"
	"careerguide/pkg/cache"
	"careerguide/pkg/catalog"

	"github.com/spf13/cobra"
)

// datasetFromFlags loads the dataset named by --file, or the configured one.
func datasetFromFlags(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (*catalog.Snapshot, []catalog.Problem, error) {
	var src catalog.Source
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		src = catalog.File{Path: file}
	} else {
		var err error
		if src, err = getDatasetSource(ctx, cfg); err != nil {
			return nil, nil, err
		}
	}

	return catalog.Load(ctx, src)
}

// offlineGuide returns an uncached Guide over the dataset selected by the flags.
func offlineGuide(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (careermap.Guide, error) {
	snap, _, err := datasetFromFlags(ctx, cmd, cfg)
	if err != nil {
		return nil, err
	}

	return careermap.New(catalog.NewStore(snap), cache.Nop{}, careermap.NewOptions(0))
}

func validateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Checks the career dataset for dangling references and duplicates",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, problems, err := datasetFromFlags(cmd.Context(), cmd, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ds := snap.Dataset
			fmt.Fprintf(out, "%s (version %s): %d stages, %d goals, %d rules, %d careers, %d ideas\n",
				snap.Source, snap.Version, len(ds.Stages), len(ds.Goals), len(ds.Rules), len(ds.Careers), len(ds.BusinessIdeas))

			if len(problems) == 0 {
				fmt.Fprintln(out, "no problems found")

				return nil
			}
			for _, p := range problems {
				fmt.Fprintln(out, "  "+p.Error())
			}

			return fmt.Errorf("%d problems found", len(problems))
		},
	}
	cmd.Flags().String("file", "", "Dataset file to check instead of the configured one")

	return cmd
}
