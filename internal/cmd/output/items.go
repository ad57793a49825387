package output

import (
	"io"
	"strconv"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/persistence"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// ItemsToTableData converts items to table format. The wide variant adds
// the details line of every item.
func ItemsToTableData(items []media.Item, wide bool) Data {
	headers := []string{"ID", "Kind", "Title", "Date", "Available"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignCenter}
	if wide {
		headers = append(headers, "Details")
		align = append(align, AlignLeft)
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		available := "No"
		if item.Available() {
			available = "Yes"
		}
		row := []string{
			item.ID(),
			item.Kind().Label(),
			item.Title(),
			media.FormatDate(item.PublicationDate()),
			available,
		}
		if wide {
			row = append(row, item.Details())
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// CollectionsToTableData converts collections to a summary table.
func CollectionsToTableData(collections []*media.Collection) Data {
	rows := make([][]string, 0, len(collections))
	for _, c := range collections {
		rows = append(rows, []string{
			c.ID(),
			c.Title(),
			media.FormatDate(c.PublicationDate()),
			strconv.Itoa(c.Len()),
		})
	}
	return Data{
		Headers:         []string{"ID", "Title", "Created", "Elements"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignRight},
	}
}

// FormatItems writes items in the given format. Structured formats use
// the storage record layout.
func FormatItems(w io.Writer, items []media.Item, format Format) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, ItemsToTableData(items, format == FormatWide))
	}
	return NewFormatter(format).Format(w, persistence.ToRecords(items))
}

// FormatItem writes a single item. Tables render it as property rows.
func FormatItem(w io.Writer, item media.Item, format Format) error {
	return NewFormatter(format).Format(w, persistence.NewRecord(item))
}

// FormatCollections writes a collection summary.
func FormatCollections(w io.Writer, collections []*media.Collection, format Format) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, CollectionsToTableData(collections))
	}
	items := make([]media.Item, len(collections))
	for i, c := range collections {
		items[i] = c
	}
	return NewFormatter(format).Format(w, persistence.ToRecords(items))
}
