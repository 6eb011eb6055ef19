package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/porschequiz/internal/bank"
	"github.com/abhisek/porschequiz/internal/config"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Inspect question banks",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions of the configured bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		b, err := bank.Load(cfg.Questions)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", b.Title, b.Source)
		fmt.Fprintln(out, strings.Repeat("─", 60))

		for i, q := range b.Questions.All() {
			fmt.Fprintf(out, "%2d. %s\n", i+1, q.Text)
			for _, opt := range q.Options {
				mark := " "
				if q.IsCorrect(opt) {
					mark = "*"
				}
				fmt.Fprintf(out, "    %s %s\n", mark, opt)
			}
		}

		fmt.Fprintf(out, "\n%d questions\n", b.Questions.Len())
		return nil
	},
}

var questionsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a question bank file (defaults to the configured bank)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			path = cfg.Questions
		}

		b, err := bank.Load(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok, %d questions, %d result tiers\n",
			b.Source, b.Questions.Len(), len(b.Results))
		for _, w := range b.Warnings() {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		return nil
	},
}

func init() {
	questionsCmd.AddCommand(questionsListCmd)
	questionsCmd.AddCommand(questionsValidateCmd)
}
