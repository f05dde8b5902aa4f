package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/glint-dev/glint/internal/config"
	"github.com/glint-dev/glint/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		name  string
		title string
		port  int
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a glint.json in the current or given directory",
		Long: `Initialize a Glint project by writing a glint.json configuration
file with sensible defaults and creating the static assets directory.

Examples:
  glint init
  glint init my-app --title="My App" --port=8080`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, name, title, port, force)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")
	cmd.Flags().StringVar(&title, "title", "", "Default page title")
	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "Server port")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing glint.json")

	return cmd
}

func runInit(dir, name, title string, port int, force bool) error {
	printBanner()
	info("Initializing a Glint project...")

	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return err
	}

	configPath := filepath.Join(abs, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.Newf(errors.CategoryCLI, "%s already exists in %s", config.ConfigFileName, abs).
			WithSuggestion("Pass --force to overwrite it.")
	}

	if name == "" {
		name = filepath.Base(abs)
	}

	cfg := config.New()
	cfg.Name = name
	cfg.Title = title
	cfg.Port = port
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return err
	}
	success("Wrote %s", configPath)

	staticDir := filepath.Join(abs, cfg.Static.Dir)
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return err
	}
	success("Created %s/", cfg.Static.Dir)

	info("")
	info("Next steps:")
	info("  glint version    confirm the CLI works")
	info("  go run .         start your application")
	return nil
}
