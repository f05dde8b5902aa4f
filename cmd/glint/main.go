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
  ╔═╗┬  ┬┌┐┌┌┬┐
  ║ ╦│  ││││ │
  ╚═╝┴─┘┴┘└┘ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "glint",
		Short: "Server-rendered web apps with a plugin system",
		Long: `Glint is a server-side rendering framework for Go.

Pages are plain Go functions returning a markup tree, rendered to
HTML on every request. Plugins extend the host application:

  • Wrap page renders with sync and async hooks
  • Contribute inline styles and client scripts
  • Register routes and middleware
  • Hydrate interactive islands on the client`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Glint ASCII art banner.
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
