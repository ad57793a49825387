// Package show implements the show command.
package show

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/application"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/cmdutil"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/output"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// NewCommand creates the show command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		GroupID: "core",
		Short:   "Show one item; collections also list their content",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmdutil.OutputFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			svc, err := app.Service()
			if err != nil {
				return err
			}

			item, err := svc.FindItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := output.FormatItem(out, item, format); err != nil {
				return err
			}

			col, ok := item.(*media.Collection)
			if !ok || !format.IsTable() || col.Len() == 0 {
				return nil
			}
			fmt.Fprintln(out)
			return output.FormatItems(out, col.Children(), format)
		},
	}
}
