package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/strext/core/log"
	"github.com/msto63/strext/internal/pipeline"
	"github.com/msto63/strext/internal/tui/playground"
)

var playCmd = &cobra.Command{
	Use:     "play [text...]",
	Aliases: []string{"playground"},
	Short:   "Start the interactive playground",
	Long: `Starts the interactive playground. Every operation is applied to the
input line as you type, using example arguments.

Keys:
  up/down     Select an operation
  enter       Use the selected result as the new input
  ctrl+z      Undo the last enter
  esc/ctrl+c  Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	return playground.Run(playground.Config{
		Registry: pipeline.DefaultRegistry(),
		// the terminal belongs to the TUI
		Logger:  log.Discard(),
		Initial: strings.Join(args, " "),
	})
}
