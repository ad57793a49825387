// Package collection implements the collection command and its
// membership subcommands.
package collection

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/application"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/cmdutil"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/output"
)

// NewCommand creates the collection command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collection",
		GroupID: "core",
		Aliases: []string{"col"},
		Short:   "Manage collection membership",
		Long: `Collections group other items by reference.

Adding an item marks it unavailable; removing it marks it available again.
An item belongs to at most one collection and a collection cannot contain
itself, directly or through nested collections.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newRemoveCommand(app))
	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newShowCommand(app))

	return cmd
}

func newAddCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "add <collection-id> <item-id>",
		Short: "Add an item to a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			if err := svc.AddToCollection(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", args[1], args[0])
			return nil
		},
	}
}

func newRemoveCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <collection-id> <item-id>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from a collection",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			if err := svc.RemoveFromCollection(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", args[1], args[0])
			return nil
		},
	}
}

func newListCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List collections",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmdutil.OutputFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			svc, err := app.Service()
			if err != nil {
				return err
			}
			return output.FormatCollections(cmd.OutOrStdout(), svc.Collections(cmd.Context()), format)
		},
	}
}

func newShowCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "show <collection-id>",
		Short: "List the items of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmdutil.OutputFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			svc, err := app.Service()
			if err != nil {
				return err
			}
			items, err := svc.CollectionItems(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.FormatItems(cmd.OutOrStdout(), items, format)
		},
	}
}
