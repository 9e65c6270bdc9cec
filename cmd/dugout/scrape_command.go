package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/dugout/fetch"
)

func newScrapeCommand(ctx *commandContext) *cobra.Command {
	var (
		formatFlag string
		outFlag    string
		awayFlag   string
		homeFlag   string
		htmlFlag   string
		saveFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "scrape <url>",
		Short: "Render a live page in a headless browser and extract its records",
		Long: `Scrape drives a headless browser to the given URL, scrolls the page
to force lazy sections to load, expands every play accordion, and then
runs the same extraction as parse over the fully-rendered document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
				return fmt.Errorf("scrape needs an http(s) URL, got %q", url)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.log()

			opts := renderOptions(cfg)
			opts.SavePath = htmlFlag
			renderer := fetch.NewRendererWithOptions(opts)

			logger.Info("rendering page", "url", url)
			markup, err := renderer.Render(cmd.Context(), url)
			if err != nil {
				return err
			}
			logger.Debug("page rendered", "bytes", len(markup))
			if htmlFlag != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved rendered page to %s\n", htmlFlag)
			}

			game, err := extractGame(markup, awayFlag, homeFlag)
			if err != nil {
				return err
			}
			logger.Info("extraction complete",
				"away", game.AwayTeam, "home", game.HomeTeam,
				"atbats", len(game.AtBats), "pitches", len(game.Pitches), "changes", len(game.Changes))

			dest, err := writeRecords(cfg, game, formatFlag, outFlag, false, false)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d at-bats, %d pitches, %d pitching changes to %s\n",
				len(game.AtBats), len(game.Pitches), len(game.Changes), dest)

			if saveFlag {
				id, err := archiveGame(cmd, ctx, game, url)
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
	cmd.Flags().StringVar(&htmlFlag, "save-html", "", "Also save the rendered page to this file")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "Also archive the game in the local database")

	return cmd
}
