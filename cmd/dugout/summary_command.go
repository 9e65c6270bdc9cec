package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tsawler/dugout/fetch"
	"github.com/tsawler/dugout/model"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var awayFlag, homeFlag string

	cmd := &cobra.Command{
		Use:   "summary <source>",
		Short: "Print a one-screen overview of an extracted game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			client := fetch.NewClientWithOptions(clientOptions(cfg))
			markup, err := client.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			game, err := extractGame(markup, awayFlag, homeFlag)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderGameSummary(game.Summary()))
			return nil
		},
	}

	cmd.Flags().StringVar(&awayFlag, "away", "", "Override the away team name")
	cmd.Flags().StringVar(&homeFlag, "home", "", "Override the home team name")

	return cmd
}

func renderGameSummary(summary model.GameSummary) string {
	out := fmt.Sprintf("%s at %s\n", summary.AwayTeam, summary.HomeTeam)
	out += renderTable(
		[]string{"At-Bats", "Pitches", "Pitching Changes"},
		[][]string{{
			strconv.Itoa(summary.AtBatCount),
			strconv.Itoa(summary.PitchCount),
			strconv.Itoa(summary.ChangeCount),
		}},
		[]columnAlignment{alignRight, alignRight, alignRight},
	) + "\n"

	if len(summary.InningCounts) > 0 {
		innings := make([]int, 0, len(summary.InningCounts))
		for inning := range summary.InningCounts {
			innings = append(innings, inning)
		}
		sort.Ints(innings)

		rows := make([][]string, 0, len(innings))
		for _, inning := range innings {
			label := strconv.Itoa(inning)
			if inning == 0 {
				label = "unresolved"
			}
			rows = append(rows, []string{label, strconv.Itoa(summary.InningCounts[inning])})
		}
		out += renderTable(
			[]string{"Inning", "At-Bats"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		) + "\n"
	}
	return out
}
