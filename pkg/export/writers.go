package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	md "github.com/nao1215/markdown"
	"github.com/parquet-go/parquet-go"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/persistence"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

func writeJSON(w io.Writer, _ media.Kind, records []persistence.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeYAML(w io.Writer, _ media.Kind, records []persistence.Record) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeMarkdown(w io.Writer, kind media.Kind, records []persistence.Record) error {
	doc := md.NewMarkdown(w).
		H1(kind.Label()+" list").
		PlainTextf("%d items", len(records)).LF()

	header := []string{"ID", "Title", "Published", "Available"}
	switch kind {
	case media.KindBook:
		header = append(header, "Author", "Publisher", "Pages")
	case media.KindMagazine:
		header = append(header, "Publisher", "Issue", "ISSN")
	case media.KindCollection:
		header = append(header, "Elements")
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		row := []string{r.ID, r.Title, r.PublicationDate, yesNo(r.Available)}
		switch kind {
		case media.KindBook:
			row = append(row, r.Author, r.Publisher, strconv.Itoa(r.Pages))
		case media.KindMagazine:
			row = append(row, r.Publisher, strconv.Itoa(r.Issue), r.ISSN)
		case media.KindCollection:
			row = append(row, strings.Join(r.Children, ", "))
		}
		rows[i] = row
	}

	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.Build()
}

// parquetRow is the columnar layout of an exported record.
type parquetRow struct {
	ID              string   `parquet:"id"`
	Kind            string   `parquet:"kind"`
	Title           string   `parquet:"title"`
	PublicationDate string   `parquet:"publication_date"`
	Available       bool     `parquet:"available"`
	Author          string   `parquet:"author,optional"`
	Publisher       string   `parquet:"publisher,optional"`
	Pages           int64    `parquet:"pages"`
	ISSN            string   `parquet:"issn,optional"`
	Issue           int64    `parquet:"issue"`
	Children        []string `parquet:"children,list"`
}

func writeParquet(w io.Writer, _ media.Kind, records []persistence.Record) error {
	rows := make([]parquetRow, len(records))
	for i, r := range records {
		rows[i] = parquetRow{
			ID:              r.ID,
			Kind:            r.Kind,
			Title:           r.Title,
			PublicationDate: r.PublicationDate,
			Available:       r.Available,
			Author:          r.Author,
			Publisher:       r.Publisher,
			Pages:           int64(r.Pages),
			ISSN:            r.ISSN,
			Issue:           int64(r.Issue),
			Children:        r.Children,
		}
	}

	pw := parquet.NewGenericWriter[parquetRow](w)
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return fmt.Errorf("writing parquet rows: %w", err)
	}
	return pw.Close()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
