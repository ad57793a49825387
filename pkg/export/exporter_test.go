package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/persistence"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/batch"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

func fixture(t *testing.T) []media.Item {
	t.Helper()
	dune := media.NewBook("Dune", "Frank Herbert", date(1965, 8, 1), "Chilton", 412)
	found := media.NewBook("Foundation", "Isaac Asimov", date(1951, 5, 1), "Gnome", 255)
	nature := media.NewMagazine("Nature", date(2024, 1, 4), "Springer", 7998, media.WithISSN("0028-0836"))
	scifi := media.NewCollection("SciFi")
	scifi.AddChild(dune)
	return []media.Item{dune, nature, found, scifi}
}

func newExporter(t *testing.T) (*Exporter, string) {
	t.Helper()
	dir := t.TempDir()
	p := batch.New(2)
	t.Cleanup(func() { p.Shutdown(time.Second) })
	return New(dir, p, WithLogger(logging.NewNopLogger())), dir
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"md", FormatMarkdown, false},
		{"parquet", FormatParquet, false},
		{"docx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Book_list.json", FileName(media.KindBook, FormatJSON))
	assert.Equal(t, "Magazine_list.md", FileName(media.KindMagazine, FormatMarkdown))
	assert.Equal(t, "Collection_list.parquet", FileName(media.KindCollection, FormatParquet))
}

func TestExportJSONKeepsOrderAndFiltersKind(t *testing.T) {
	e, dir := newExporter(t)
	path, err := e.Export(context.Background(), fixture(t), media.KindBook, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Book_list.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []persistence.Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Dune", records[0].Title)
	assert.Equal(t, "Foundation", records[1].Title)
	assert.Equal(t, "Frank Herbert", records[0].Author)
}

func TestExportYAML(t *testing.T) {
	e, _ := newExporter(t)
	path, err := e.Export(context.Background(), fixture(t), media.KindMagazine, FormatYAML)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []persistence.Record
	require.NoError(t, yaml.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Nature", records[0].Title)
	assert.Equal(t, "0028-0836", records[0].ISSN)
	assert.Equal(t, 7998, records[0].Issue)
}

func TestExportMarkdown(t *testing.T) {
	e, _ := newExporter(t)
	items := fixture(t)
	path, err := e.Export(context.Background(), items, media.KindCollection, FormatMarkdown)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "# Collection list")
	assert.Contains(t, out, "SciFi")
	assert.Contains(t, out, items[0].ID())
	assert.Contains(t, out, "Elements")
}

func TestExportParquet(t *testing.T) {
	e, _ := newExporter(t)
	path, err := e.Export(context.Background(), fixture(t), media.KindBook, FormatParquet)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	info, err := f.Stat()
	require.NoError(t, err)

	pf, err := parquet.OpenFile(f, info.Size())
	require.NoError(t, err)
	reader := parquet.NewGenericReader[parquetRow](pf)
	defer reader.Close()

	rows := make([]parquetRow, 4)
	n, _ := reader.Read(rows)
	require.Equal(t, 2, n)
	assert.Equal(t, "Dune", rows[0].Title)
	assert.Equal(t, int64(412), rows[0].Pages)
	assert.Equal(t, "book", rows[1].Kind)
}

func TestExportNothingToExport(t *testing.T) {
	e, dir := newExporter(t)
	items := []media.Item{media.NewBook("Dune", "Frank Herbert", date(1965, 8, 1), "Chilton", 412)}

	_, err := e.Export(context.Background(), items, media.KindMagazine, FormatJSON)
	assert.ErrorIs(t, err, ErrNothingToExport)

	_, statErr := os.Stat(filepath.Join(dir, "Magazine_list.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportUnsupportedFormat(t *testing.T) {
	e, _ := newExporter(t)
	_, err := e.Export(context.Background(), fixture(t), media.KindBook, Format("docx"))
	assert.Error(t, err)
}

func TestExportCanceledContext(t *testing.T) {
	e, _ := newExporter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Export(ctx, fixture(t), media.KindBook, FormatJSON)
	assert.Error(t, err)
}

func TestExportOverwrites(t *testing.T) {
	e, _ := newExporter(t)
	items := fixture(t)
	_, err := e.Export(context.Background(), items, media.KindBook, FormatJSON)
	require.NoError(t, err)

	path, err := e.Export(context.Background(), items[:1], media.KindBook, FormatJSON)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []persistence.Record
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, 1)
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestInDir(t *testing.T) {
	e, dir := newExporter(t)
	other := t.TempDir()
	moved := e.InDir(other)

	assert.Equal(t, dir, e.Dir())
	path, err := moved.Export(context.Background(), fixture(t), media.KindBook, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(other, "Book_list.json"), path)
}
