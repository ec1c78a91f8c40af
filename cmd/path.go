package main

import (
	"fmt"
	"io"
	"strings"

	"careerguide/internal/config"
	"careerguide/pkg/domain"

	"github.com/spf13/cobra"
)

func pathCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Prints the path from a stage toward a goal or career",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stage, _ := cmd.Flags().GetString("stage")
			goal, _ := cmd.Flags().GetString("goal")
			career, _ := cmd.Flags().GetString("career")

			guide, err := offlineGuide(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			var path *domain.CareerPath
			if career != "" {
				path, err = guide.PathToCareer(ctx, domain.StageID(stage), career)
			} else {
				path, err = guide.GeneratePath(ctx, domain.StageID(stage), domain.GoalID(goal))
			}
			if err != nil {
				return err
			}

			printPath(cmd.OutOrStdout(), path)

			return nil
		},
	}
	cmd.Flags().String("stage", "", "Current stage ID")
	cmd.Flags().String("goal", "", "Goal ID")
	cmd.Flags().String("career", "", "Career ID, walks toward the goal of the career instead of --goal")
	cmd.Flags().String("file", "", "Dataset file to use instead of the configured one")
	_ = cmd.MarkFlagRequired("stage")
	cmd.MarkFlagsOneRequired("goal", "career")
	cmd.MarkFlagsMutuallyExclusive("goal", "career")

	return cmd
}

func printPath(w io.Writer, p *domain.CareerPath) {
	fmt.Fprintf(w, "%s -> %s\n", p.Start, p.Goal)
	for _, s := range p.Steps {
		fmt.Fprintf(w, "%2d. %s -> %s", s.Order, s.FromLabel, s.ToLabel)
		if s.Action != "" {
			fmt.Fprintf(w, ": %s", s.Action)
		}
		if s.Duration != "" {
			fmt.Fprintf(w, " (%s)", s.Duration)
		}
		if len(s.Exams) > 0 {
			fmt.Fprintf(w, " [%s]", strings.Join(s.Exams, ", "))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "final: %s\n", p.Final)
	if p.CycleDetected {
		fmt.Fprintln(w, "stopped: the rules loop back to an earlier stage")
	}
}
