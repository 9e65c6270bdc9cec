package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Manage the local game archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newArchiveListCommand(ctx))
	cmd.AddCommand(newArchiveShowCommand(ctx))
	cmd.AddCommand(newArchiveExportCommand(ctx))
	cmd.AddCommand(newArchiveDeleteCommand(ctx))

	return cmd
}

func newArchiveListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.ListGames(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Archive is empty.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				saved := ""
				if !rec.SavedAt.IsZero() {
					saved = rec.SavedAt.Local().Format(time.DateTime)
				}
				rows = append(rows, []string{
					strconv.FormatInt(rec.ID, 10),
					rec.AwayTeam + " at " + rec.HomeTeam,
					saved,
					strconv.Itoa(rec.AtBatCount),
					strconv.Itoa(rec.PitchCount),
					strconv.Itoa(rec.ChangeCount),
					rec.Source,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Matchup", "Saved", "At-Bats", "Pitches", "Changes", "Source"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newArchiveShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the overview of an archived game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			s, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			game, err := s.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			if game == nil {
				return fmt.Errorf("no archived game with id %d", id)
			}

			fmt.Fprint(cmd.OutOrStdout(), renderGameSummary(game.Summary()))
			return nil
		},
	}
}

func newArchiveExportCommand(ctx *commandContext) *cobra.Command {
	var (
		formatFlag string
		outFlag    string
		noHeader   bool
		prettyFlag bool
	)

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write an archived game's records to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			s, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			game, err := s.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			if game == nil {
				return fmt.Errorf("no archived game with id %d", id)
			}

			dest, err := writeRecords(cfg, game, formatFlag, outFlag, noHeader, prettyFlag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote game #%d to %s\n", id, dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: xlsx, csv, tsv, json, jsonl")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output file path")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the header row in delimited output")
	cmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Indent JSON output")

	return cmd
}

func newArchiveDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a game from the archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			s, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			deleted, err := s.DeleteGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("no archived game with id %d", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted game #%d\n", id)
			return nil
		},
	}
}

func parseGameID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid game id %q", arg)
	}
	return id, nil
}
