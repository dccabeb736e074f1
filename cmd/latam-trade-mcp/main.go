// latam-trade-mcp: LATAM Trade Agreement MCP Server
//
// A read-only MCP server that gives AI assistants structured access to
// Latin American trade agreements: cross-border data-transfer rules,
// mutual-recognition arrangements, digital-trade obligations, and a
// searchable agreement catalogue.
//
// Usage:
//
//	latam-trade-mcp serve    # Start MCP server (stdio transport)
//	latam-trade-mcp update   # Update to the latest version
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	tradeserver "github.com/svillegasm/latam-trade-mcp/internal/server"
	"github.com/svillegasm/latam-trade-mcp/internal/store"
	"github.com/svillegasm/latam-trade-mcp/internal/updater"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "latam-trade-mcp",
		Short:   "MCP server for Latin American trade agreement data",
		Version: tradeserver.Version,
		Long: `latam-trade-mcp serves a read-only catalogue of Latin American trade
agreements over the Model Context Protocol: data-transfer rules,
mutual-recognition arrangements, and digital-trade obligations.

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "latam-trade": {
        "command": "latam-trade-mcp",
        "args": ["serve"]
      }
    }
  }`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newUpdateCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("latam-trade-mcp v%s\n", tradeserver.Version)
		},
	}
}

func newServeCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := store.DefaultConfig()
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "",
		"directory for the catalogue database (default ~/.latam-trade-mcp)")

	return cmd
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update to the latest released version",
		Run: func(cmd *cobra.Command, args []string) {
			runUpdate()
		},
	}
}

func run(cfg store.Config) error {
	s, cleanup, err := tradeserver.New(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Background version check — prints to stderr so it doesn't
	// interfere with MCP's stdio transport on stdout.
	go checkForUpdates()

	// Stdio transport ends when the host closes the pipe; an interrupt
	// just needs the store closed before exit.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(0)
	}()

	return server.ServeStdio(s)
}

// checkForUpdates runs a non-blocking version check and prints a notice
// to stderr if an update is available. This runs in a goroutine during
// "serve" and is best-effort — network failures are silently ignored.
func checkForUpdates() {
	result := updater.CheckVersion(tradeserver.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  📦 Update available: v%s → v%s\n"+
				"     Run: latam-trade-mcp update\n"+
				"     Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

// runUpdate performs a self-update to the latest version.
func runUpdate() {
	fmt.Fprintf(os.Stderr, "🔍 Checking for updates...\n")

	result := updater.CheckVersion(tradeserver.Version)
	if !result.UpdateAvailable {
		fmt.Fprintf(os.Stderr, "✅ Already at the latest version (v%s)\n", result.CurrentVersion)
		return
	}

	fmt.Fprintf(os.Stderr, "📦 New version available: v%s → v%s\n", result.CurrentVersion, result.LatestVersion)
	fmt.Fprintf(os.Stderr, "⬇️  Downloading...\n")

	if err := updater.SelfUpdate(tradeserver.Version); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Update failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "\n   You can download manually from:\n   %s\n", result.ReleaseURL)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "✅ Updated to v%s!\n", result.LatestVersion)
	fmt.Fprintf(os.Stderr, "   Restart latam-trade-mcp to use the new version.\n")
}
