package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/dugout/export"
	"github.com/tsawler/dugout/fetch"
	"github.com/tsawler/dugout/model"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var (
		formatFlag string
		outFlag    string
		awayFlag   string
		homeFlag   string
		noHeader   bool
		prettyFlag bool
		saveFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "parse <source>",
		Short: "Extract records from a saved page, URL, or raw markup",
		Long: `Parse extracts at-bat, pitch, and pitching-change records from a
play-by-play page. The source may be a local file, an http(s) URL, or raw
markup. URLs are fetched directly; pages that need a browser to expand
their play accordions should go through the scrape command instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.log()

			source := args[0]
			client := fetch.NewClientWithOptions(clientOptions(cfg))
			markup, err := client.Fetch(cmd.Context(), source)
			if err != nil {
				return err
			}
			logger.Debug("document retrieved", "source", fetch.DetectSource(source).String(), "bytes", len(markup))

			game, err := extractGame(markup, awayFlag, homeFlag)
			if err != nil {
				return err
			}
			logger.Info("extraction complete",
				"away", game.AwayTeam, "home", game.HomeTeam,
				"atbats", len(game.AtBats), "pitches", len(game.Pitches), "changes", len(game.Changes))

			dest, err := writeRecords(cfg, game, formatFlag, outFlag, noHeader, prettyFlag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d at-bats, %d pitches, %d pitching changes to %s\n",
				len(game.AtBats), len(game.Pitches), len(game.Changes), dest)

			if saveFlag {
				id, err := archiveGame(cmd, ctx, game, source)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Archived as game #%d\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: xlsx, csv, tsv, json, jsonl")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output file path")
	cmd.Flags().StringVar(&awayFlag, "away", "", "Override the away team name")
	cmd.Flags().StringVar(&homeFlag, "home", "", "Override the home team name")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the header row in delimited output")
	cmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Indent JSON output")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "Also archive the game in the local database")

	return cmd
}

// writeRecords resolves format and destination from flags and config, then
// writes the game. Returns the destination actually written.
func writeRecords(cfg *Config, game *model.Game, formatFlag, outFlag string, noHeader, pretty bool) (string, error) {
	name := cfg.Output.Format
	if formatFlag != "" {
		name = formatFlag
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return "", err
	}

	dest := outFlag
	if dest == "" {
		dest = "game" + format.FileExtension()
	}

	exporter := export.NewExporterWithConfig(export.Config{
		Format:        format,
		IncludeHeader: cfg.Output.IncludeHeader && !noHeader,
		PrettyPrint:   cfg.Output.Pretty || pretty,
	})
	if err := exporter.WriteGame(game, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// archiveGame saves the game in the archive database.
func archiveGame(cmd *cobra.Command, ctx *commandContext, game *model.Game, source string) (int64, error) {
	s, err := ctx.openStore()
	if err != nil {
		return 0, err
	}
	defer s.Close()

	// Raw markup makes a useless provenance string.
	if fetch.DetectSource(source) == fetch.SourceMarkup {
		source = ""
	}
	return s.SaveGame(cmd.Context(), game, source)
}
