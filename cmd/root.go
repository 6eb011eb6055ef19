package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "porschequiz",
	Short: "Porsche trivia quiz for the terminal",
	Long:  "Porsche Cars Quiz: ten multiple-choice questions about Porsche, a score and a car to take home.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Path to a YAML question bank (overrides PORSCHEQUIZ_QUESTIONS)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides PORSCHEQUIZ_LOG_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides PORSCHEQUIZ_LOG_LEVEL)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}
