// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/application"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/cmdutil"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/output"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var sortName, kindName string

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List catalog items",
		Args:    cobra.NoArgs,
		Example: `  library list                  # insertion order
  library list --sort title     # alphabetical by title
  library list --sort date      # newest first
  library list --kind book -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sortBy, err := media.LookupSort(sortName)
			if err != nil {
				return errors.WrapValidation("sort", err)
			}
			kind, err := cmdutil.ParseKindArg(kindName)
			if err != nil {
				return err
			}
			format, err := cmdutil.OutputFormat(app.OutputFormat())
			if err != nil {
				return err
			}

			svc, err := app.Service()
			if err != nil {
				return err
			}

			items := svc.ListItems(cmd.Context(), sortBy)
			if kind != "" {
				items = filterKind(items, kind)
			}

			app.Logger().Debug().Int("count", len(items)).Msg("Listing items")
			return output.FormatItems(cmd.OutOrStdout(), items, format)
		},
	}

	cmd.Flags().StringVarP(&sortName, "sort", "s", "", "sort order: none, title, date")
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "only list one kind: book, magazine, collection")

	return cmd
}

func filterKind(items []media.Item, kind media.Kind) []media.Item {
	filtered := make([]media.Item, 0, len(items))
	for _, item := range items {
		if item.Kind() == kind {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
