// Package search implements the search command.
package search

import (
	"github.com/spf13/cobra"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/application"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/cmdutil"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/output"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// NewCommand creates the search command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var (
		title  string
		author string
		year   int
	)

	cmd := &cobra.Command{
		Use:     "search",
		GroupID: "core",
		Aliases: []string{"find"},
		Short:   "Search items by title, author or publication year",
		Args:    cobra.NoArgs,
		Example: `  library search --title dune
  library search --author herbert
  library search --year 1965`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmdutil.OutputFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			svc, err := app.Service()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var results []media.Item
			switch {
			case cmd.Flags().Changed("title"):
				results = svc.FindByTitle(ctx, title)
			case cmd.Flags().Changed("author"):
				for _, b := range svc.FindBooksByAuthor(ctx, author) {
					results = append(results, b)
				}
			case cmd.Flags().Changed("year"):
				results = svc.FindByPublicationYear(ctx, year)
			}

			app.Logger().Debug().Int("count", len(results)).Msg("Search finished")
			return output.FormatItems(cmd.OutOrStdout(), results, format)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "case-insensitive title substring")
	cmd.Flags().StringVarP(&author, "author", "a", "", "case-insensitive author substring (books only)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "publication year")
	cmd.MarkFlagsOneRequired("title", "author", "year")
	cmd.MarkFlagsMutuallyExclusive("title", "author", "year")

	return cmd
}
