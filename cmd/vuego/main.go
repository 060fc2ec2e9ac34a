package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┬ ┬┌─┐┌─┐┌─┐
  ╚╗╔╝│ │├┤ │ ┬│ │
   ╚╝ └─┘└─┘└─┘└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "vuego",
		Short: "Runtime core tooling for vuego applications",
		Long: `Vuego is a component runtime core for Go.

It provides the virtual node data model, compiler-assisted block
tracking, and the application shell used by host renderers. This CLI
ships a demo server and micro-benchmarks for the runtime:

  • SSR demo page with live patches over WebSocket
  • Prometheus metrics endpoint
  • Node construction and diff benchmarks`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		benchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the vuego ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
