// Package export implements the export command.
package export

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/application"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/cmdutil"
	libexport "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/export"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// NewCommand creates the export command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var kindName, formatName, dir string

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "management",
		Short:   "Export all items of one kind to a file",
		Long: `Export writes every item of the given kind to <Kind>_list.<ext> in the
export directory (default ~/Downloads). Existing files are replaced.`,
		Args: cobra.NoArgs,
		Example: `  library export --kind book
  library export --kind magazine --format markdown
  library export --kind collection --format parquet --dir ./out`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := cmdutil.ParseKindArg(kindName)
			if err != nil {
				return err
			}
			if kind == "" {
				return fmt.Errorf("--kind is required (one of %s)", kindList())
			}
			format, err := libexport.ParseFormat(formatName)
			if err != nil {
				return err
			}

			svc, err := app.Service()
			if err != nil {
				return err
			}
			exporter := app.Exporter()
			if dir != "" {
				exporter = exporter.InDir(dir)
			}

			ctx := cmd.Context()
			path, err := exporter.Export(ctx, svc.ListItems(ctx, media.Unsorted), kind, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "item kind: "+kindList())
	cmd.Flags().StringVarP(&formatName, "format", "f", "json", "file format: json, yaml, markdown, parquet")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "export directory (overrides export_dir)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func kindList() string {
	kinds := media.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
