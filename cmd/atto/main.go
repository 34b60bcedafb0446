package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/atto"
	"github.com/iw2rmb/atto/buffer"
	"github.com/iw2rmb/atto/editor"
	"github.com/iw2rmb/atto/internal/config"
	"github.com/iw2rmb/atto/internal/tty"
)

var (
	configPath string
	debugLog   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "atto [file]",
	Short: "atto - a minimal terminal text editor",
	Long: `atto is a minimal terminal text editor.

Run without arguments to start with an empty, unnamed document, or pass a
file to edit it. Ctrl+S saves, Ctrl+Q quits.

Examples:
  atto                   # Start with an empty document
  atto notes.txt         # Edit notes.txt
  atto --debug atto.log  # Write debug logs to atto.log`,
	Version:       atto.VersionTag(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog, err := setupLogging(debugLog)
		if err != nil {
			return err
		}
		defer closeLog()

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		ecfg, err := cfg.EditorConfig()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		ecfg.Version = atto.Version()

		size, err := tty.Probe(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}

		doc := buffer.New()
		if len(args) > 0 {
			if err := doc.LoadFile(args[0]); err != nil {
				return err
			}
			log.Printf("loaded file=%q rows=%d", doc.Filename(), doc.NumRows())
		}
		ecfg.Document = doc

		return run(editor.New(ecfg).SetSize(size.Width, size.Height))
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: $ATTO_CONFIG or <user config dir>/atto/config.yaml)")
	rootCmd.Flags().StringVar(&debugLog, "debug", os.Getenv("ATTO_DEBUG"), "write debug logs to this file")
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty. The terminal belongs to the editor while it runs.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "atto")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
