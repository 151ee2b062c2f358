// tictactoe is a two-player tic-tac-toe game.
//
// Usage:
//
//	tictactoe play     - play in the terminal
//	tictactoe serve    - serve the game over an HTTP JSON API
//
// Global flags:
//
//	--config <path>  - config file (default: ./config.yml)
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-local/internal"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Two-player tic-tac-toe",
	Long: `Two-player tic-tac-toe with a running score and light/dark themes.

Examples:
  tictactoe play
  tictactoe serve --config ./config.yml`,
	SilenceUsage: true,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play a hot-seat game in the terminal.

Controls:
  Arrows/hjkl    - Move the cursor
  Enter/Space    - Place a mark
  1-9            - Place a mark on that cell
  R              - Restart (score is kept)
  T              - Toggle light/dark theme
  Q/Ctrl+C       - Quit`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		conf := initConfig()

		// the terminal belongs to the game, so logs go to a file or nowhere
		out, closeOut, err := app.OpenLogOutput(conf.LogFile)
		if err != nil {
			return err
		}
		defer closeOut()

		return app.RunTerminal(initLogger(conf, out), conf)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		conf := initConfig()

		if err := app.RunApp(initLogger(conf, os.Stdout), conf); err != nil {
			return fmt.Errorf("app run failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default ./config.yml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	if flagConfig != "" {
		return config.MustLoad(flagConfig)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
