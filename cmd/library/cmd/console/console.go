// Package console implements the console command, which opens the
// interactive menu.
package console

import (
	"github.com/spf13/cobra"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/application"
	libconsole "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/console"
)

// NewCommand creates the console command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "console",
		GroupID: "core",
		Short:   "Open the interactive menu",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app)
		},
	}
}

// Run opens the interactive menu on the command's input and output.
func Run(cmd *cobra.Command, app application.Application) error {
	svc, err := app.Service()
	if err != nil {
		return err
	}
	exporter := app.Exporter()

	c := libconsole.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(),
		libconsole.WithLogger(app.Logger()),
		libconsole.WithExporter(exporter),
	)
	return c.Run(cmd.Context())
}
