package app

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Execute runs the library CLI with the given arguments through fang,
// which adds styled help, completions and signal handling.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)

	return fang.Execute(ctx, rootCmd,
		fang.WithVersion(a.version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)
}

// createRootCommand creates the root cobra command with all subcommands.
// Without a subcommand the root runs the interactive console.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "library",
		Short:   "Media library catalog",
		Version: a.version,
		Long: `Library keeps a catalog of books, magazines and collections.

Items are stored under the data directory (yaml or bolt) and can be
searched, grouped into collections and exported as JSON, YAML, Markdown
or Parquet. Run without a command to open the interactive console.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE:              a.runConsole,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.library.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format: table, json, yaml, wide")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("library {{.Version}}\n")
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
// Global flags are read from the root so that a subcommand's own flag of
// the same name (export --format) does not shadow them.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()
	if root.PersistentFlags().Changed("config") {
		config, err := LoadConfig(mustGetString(root, "config"))
		if err != nil {
			return err
		}
		a.config.DataDir = config.DataDir
		a.config.Storage = config.Storage
		a.config.Workers = config.Workers
		a.config.ExportDir = config.ExportDir
		a.config.ShutdownTimeout = config.ShutdownTimeout
	}

	a.config.UpdateFromFlags(
		mustGetBool(root, "verbose"),
		mustGetBool(root, "quiet"),
		mustGetBool(root, "no-color"),
		mustGetString(root, "format"),
		mustGetString(root, "log-level"),
	)

	if !a.fixedLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
	}

	cmd.SetContext(a.contextLogger(cmd.Context()))
	return nil
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a persistent boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.PersistentFlags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a persistent string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.PersistentFlags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
