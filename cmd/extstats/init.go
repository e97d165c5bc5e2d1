package main

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vango-dev/extstats/internal/config"
	"github.com/vango-dev/extstats/internal/errors"
)

//go:embed assets/style.css
var defaultStyleSheet []byte

func initCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a configuration and default assets",
		Long: `Write extstats.json (or extstats.toml) with the default settings and a
static/style.css stylesheet into dir (default: the current directory).

Examples:
  extstats init
  extstats init archive --format toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Config format: json or toml")

	return cmd
}

func runInit(cmd *cobra.Command, dir, format string) error {
	var name string
	switch format {
	case "json":
		name = config.ConfigFileName
	case "toml":
		name = config.TOMLConfigFileName
	default:
		return errors.New("X003").
			WithDetail("unknown config format " + format).
			WithSuggestion("Use --format json or --format toml")
	}

	for _, existing := range []string{config.ConfigFileName, config.TOMLConfigFileName} {
		if _, err := os.Stat(filepath.Join(dir, existing)); err == nil {
			return errors.New("X004").WithDetail(filepath.Join(dir, existing))
		}
	}

	cfg := config.New()
	cfg.Build.Data = "extensions.json"
	cfg.Serve.Static = "static"

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Join(dir, cfg.Serve.Static), 0755); err != nil {
		return errors.New("S001").Wrap(err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return err
	}
	css := filepath.Join(dir, cfg.Serve.Static, "style.css")
	if err := os.WriteFile(css, defaultStyleSheet, 0644); err != nil {
		return errors.New("S001").WithDetail(css).Wrap(err)
	}

	out := cmd.OutOrStdout()
	success(out, "Created %s", path)
	info(out, "Created %s", css)
	info(out, "Next: put the extension data in %s and run extstats build", filepath.Join(dir, cfg.Build.Data))
	return nil
}
