package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/vango-dev/extstats/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	config   string
	logLevel string
	logJSON  bool
}

func main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		errors.DisableColors()
	}

	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "extstats",
		Short: "Chrome extensions archive site generator",
		Long: `extstats renders the Chrome extensions archive: a paginated list of
extensions ordered by number of users and one page per extension with
every archived version.

Pages can be written to a directory, uploaded to S3 or served over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), flags.logLevel, flags.logJSON)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Config file or directory (default: ./extstats.json or ./extstats.toml)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.BoolVar(&flags.logJSON, "log-json", false, "Log as JSON")

	rootCmd.AddCommand(
		initCmd(),
		buildCmd(flags),
		serveCmd(flags),
		renderCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// newLogger creates the process logger: tint on terminals and plain text
// elsewhere, or JSON when asked.
func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.New("X003").
			WithDetail(fmt.Sprintf("unknown log level %q", level)).
			WithSuggestion("Use one of debug, info, warn or error")
	}

	if asJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})), nil
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", yellow("⚠"), fmt.Sprintf(format, args...))
}
