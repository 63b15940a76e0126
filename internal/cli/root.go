package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fiverow/gomoku/internal/factory"
	"github.com/fiverow/gomoku/internal/services/game"
	redisstorage "github.com/fiverow/gomoku/internal/storage/redis"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gomoku",
		Short: "Gomoku engine speaking the Go Text Protocol",
		Long: `gomoku is a five-in-a-row playing engine.

Run without a subcommand it speaks the Go Text Protocol on stdin/stdout,
suitable for use with gogui and regression test drivers. The serve
subcommand exposes the same engine over a JSON HTTP API instead.`,
		SilenceUsage: true,
		RunE:         runGTP,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVar(&cfg.BoardSize, "board-size", cfg.BoardSize, "Initial board size (default 15)")
	rootCmd.PersistentFlags().IntVar(&cfg.WinLength, "win-length", cfg.WinLength, "Run length required to win (default 5)")
	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: memory, redis (env: GOMOKU_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: GOMOKU_REDIS_URL)")

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the application logger. Logs always go to stderr:
// in GTP mode stdout carries protocol responses only.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// buildApp wires the application from the CLI configuration
func buildApp(logger *slog.Logger) (*factory.App, error) {
	gameCfg := game.DefaultConfig()
	if cfg.WinLength > 0 {
		gameCfg.WinLength = cfg.WinLength
	}
	if cfg.BoardSize > 0 {
		gameCfg.DefaultBoardSize = cfg.BoardSize
	}

	factoryCfg := factory.Config{
		GameConfig:  gameCfg,
		Logger:      logger,
		StorageType: cfg.Storage,
	}
	if cfg.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	return factory.New(factoryCfg)
}
