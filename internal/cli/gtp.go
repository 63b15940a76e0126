package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fiverow/gomoku/internal/gtp"
)

// runGTP serves the Go Text Protocol on stdin/stdout until EOF or quit
func runGTP(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	app, err := buildApp(logger)
	if err != nil {
		return err
	}

	conn := gtp.NewConnection(app.GameController, app.BotService, gtp.Config{
		Name:      "gomoku",
		Version:   "1.0",
		BoardSize: cfg.BoardSize,
	}, logger)

	return conn.Run(cmd.Context(), os.Stdin, os.Stdout)
}
