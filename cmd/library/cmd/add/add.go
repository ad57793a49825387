// Package add implements the add command and its item subcommands.
package add

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/application"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/cmdutil"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/output"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// NewCommand creates the add command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [kind]",
		GroupID: "core",
		Short:   "Add a book, magazine or collection",
		Example: `  library add book --title Dune --author "Frank Herbert" --published 1965-08-01 --publisher Chilton --pages 412
  library add magazine --title Nature --published 04/01/2024 --publisher Springer --issue 7998
  library add collection --title SciFi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newBookCommand(app))
	cmd.AddCommand(newMagazineCommand(app))
	cmd.AddCommand(newCollectionCommand(app))

	return cmd
}

func newBookCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Add a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, err := cmdutil.RequireString(cmd, "title")
			if err != nil {
				return err
			}
			author, err := cmdutil.RequireString(cmd, "author")
			if err != nil {
				return err
			}
			publisher, err := cmdutil.RequireString(cmd, "publisher")
			if err != nil {
				return err
			}
			published, err := publishedDate(cmd)
			if err != nil {
				return err
			}
			pages, err := cmdutil.RequirePositive(cmd, "pages")
			if err != nil {
				return err
			}
			return save(cmd, app, media.NewBook(title, author, published, publisher, pages))
		},
	}

	cmd.Flags().String("title", "", "book title")
	cmd.Flags().String("author", "", "author name")
	cmd.Flags().String("published", "", "publication date (YYYY-MM-DD or dd/mm/yyyy)")
	cmd.Flags().String("publisher", "", "publisher")
	cmd.Flags().Int("pages", 0, "number of pages")
	for _, name := range []string{"title", "author", "published", "publisher", "pages"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newMagazineCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "magazine",
		Short: "Add a magazine issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, err := cmdutil.RequireString(cmd, "title")
			if err != nil {
				return err
			}
			publisher, err := cmdutil.RequireString(cmd, "publisher")
			if err != nil {
				return err
			}
			published, err := publishedDate(cmd)
			if err != nil {
				return err
			}
			issue, err := cmdutil.RequirePositive(cmd, "issue")
			if err != nil {
				return err
			}
			issn, _ := cmd.Flags().GetString("issn")
			return save(cmd, app, media.NewMagazine(title, published, publisher, issue, media.WithISSN(issn)))
		},
	}

	cmd.Flags().String("title", "", "magazine title")
	cmd.Flags().String("published", "", "publication date (YYYY-MM-DD or dd/mm/yyyy)")
	cmd.Flags().String("publisher", "", "publisher")
	cmd.Flags().Int("issue", 0, "issue number")
	cmd.Flags().String("issn", "", "ISSN (optional)")
	for _, name := range []string{"title", "published", "publisher", "issue"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newCollectionCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Add an empty collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, err := cmdutil.RequireString(cmd, "title")
			if err != nil {
				return err
			}
			return save(cmd, app, media.NewCollection(title))
		},
	}

	cmd.Flags().String("title", "", "collection title")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func publishedDate(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("published")
	return cmdutil.ParseDate("published", s)
}

func save(cmd *cobra.Command, app application.Application, item media.Item) error {
	svc, err := app.Service()
	if err != nil {
		return err
	}
	if err := svc.SaveItem(cmd.Context(), item); err != nil {
		return err
	}

	format, err := cmdutil.OutputFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	return output.FormatItem(cmd.OutOrStdout(), item, format)
}
