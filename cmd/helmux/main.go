// Command helmux is the CLI entry point: parses flags,
// loads configuration, puts the host terminal into raw mode / the
// alternate screen via Bubbletea, and runs the application until the
// multiplexer session ends or the user quits.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/rogerneel/helmux/internal/app"
	"github.com/rogerneel/helmux/internal/config"
	"github.com/rogerneel/helmux/internal/logging"
	"github.com/rogerneel/helmux/internal/ui"
)

var (
	flagSession     string
	flagMultiplexer string
	flagDebugLog    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helmux",
		Short: "A terminal-multiplexer front-end",
		Long: `helmux attaches to a background multiplexer server running in control
mode and presents its windows as a tabbed UI inside this terminal: a
left-hand sidebar lists tabs, the main viewport shows the active tab's
live screen.`,
		Example: `  # Attach to (or create) the default session
  helmux

  # Use a specific session name and multiplexer binary
  helmux --session work --multiplexer tmux

  # Write debug logs to a custom path
  helmux --debug-log /tmp/helmux.log`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flagSession, "session", "s", "", "Multiplexer session name (default: from config, or "+config.DefaultSessionName+")")
	rootCmd.PersistentFlags().StringVarP(&flagMultiplexer, "multiplexer", "m", "", "Multiplexer binary to launch (default: from config, or tmux)")
	rootCmd.PersistentFlags().StringVar(&flagDebugLog, "debug-log", "", "Path to the debug log file (default: from config)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "helmux:", err)
		os.Exit(1)
	}
}

// run wires config, logging, and the Bubbletea program together and
// blocks until the program exits.
func run() error {
	ui.SetColorProfile(termenv.EnvColorProfile())

	cfg := config.Load()
	if flagSession != "" {
		cfg.SessionName = flagSession
	}
	if flagMultiplexer != "" {
		cfg.Multiplexer = flagMultiplexer
	}
	if flagDebugLog != "" {
		cfg.DebugLogPath = flagDebugLog
	}

	logger, logFile, err := logging.Open(cfg.DebugLogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	model, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, runErr := p.Run()

	model.Shutdown()

	if runErr != nil {
		return runErr
	}
	if err := model.Err(); err != nil {
		return err
	}
	return nil
}
