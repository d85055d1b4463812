// Package export renders screen data as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

// Content types of generated files.
const (
	ContentTypeCSV  = "text/csv"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// File is a generated download.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Table is a header row followed by data rows, all as display strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// CSV renders t as comma separated text.
//
// Unless quote is set, fields are joined with commas verbatim: a value
// containing a comma or a newline shifts the columns of its row.
func CSV(t Table, quote bool) ([]byte, error) {
	if quote {
		return quotedCSV(t)
	}

	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, strings.Join(t.Header, ","))
	for _, row := range t.Rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func quotedCSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("failed to write csv rows: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DatedName returns prefix_YYYY-MM-DD.ext for the day of now.
func DatedName(prefix string, now time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.UTC().Format("2006-01-02"), ext)
}

// Render produces t in the requested format ("csv" or "xlsx").
func Render(t Table, format, prefix, sheet string, now time.Time, quoteCSV bool) (*File, error) {
	switch format {
	case "", "csv":
		body, err := CSV(t, quoteCSV)
		if err != nil {
			return nil, err
		}
		return &File{Name: DatedName(prefix, now, "csv"), ContentType: ContentTypeCSV, Body: body}, nil
	case "xlsx":
		buf, err := XLSX(sheet, t)
		if err != nil {
			return nil, err
		}
		return &File{Name: DatedName(prefix, now, "xlsx"), ContentType: ContentTypeXLSX, Body: buf.Bytes()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
