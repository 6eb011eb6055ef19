package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/porschequiz/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in line mode over stdin and stdout",
	Long: `Play the quiz without the full-screen UI.

Answer with an option number or its text. Type q to quit, unless q is
one of the options.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		g, err := setupGame(cmd)
		if err != nil {
			return err
		}
		defer g.finish(&err)

		p := console.New(g.ctrl, g.projector, cmd.InOrStdin(), cmd.OutOrStdout())
		return p.Play()
	},
}
