package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool
	var jsonLogFlag bool

	ctx := newCommandContext(&configFlag, &verboseFlag, &jsonLogFlag)

	rootCmd := &cobra.Command{
		Use:           "dugout",
		Short:         "Extract play-by-play records from rendered game pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogFlag, "json-log", false, "Emit logs as JSON")

	rootCmd.AddCommand(newParseCommand(ctx))
	rootCmd.AddCommand(newScrapeCommand(ctx))
	rootCmd.AddCommand(newSummaryCommand(ctx))
	rootCmd.AddCommand(newArchiveCommand(ctx))

	return rootCmd
}
