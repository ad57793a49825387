package app

import (
	"github.com/spf13/cobra"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/cmd/library/cmd/add"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/cmd/library/cmd/collection"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/cmd/library/cmd/console"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/cmd/library/cmd/export"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/cmd/library/cmd/list"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/cmd/library/cmd/remove"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/cmd/library/cmd/search"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/cmd/library/cmd/show"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(collection.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(console.NewCommand(a))

	rootCmd.AddCommand(a.newVersionCommand())
}

// runConsole runs the interactive console when no subcommand is given.
func (a *App) runConsole(cmd *cobra.Command, args []string) error {
	return console.Run(cmd, a)
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("library %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
