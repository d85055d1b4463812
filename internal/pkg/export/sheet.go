package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Field is a labelled value within an Entry.
type Field struct {
	Label string
	Value string
}

// Entry is a numbered item of a printable sheet.
type Entry struct {
	Heading string
	Fields  []Field
}

// Sheet is a printable document such as an exam card: a title, a few
// header lines, numbered entries and a footer.
type Sheet struct {
	Title   string
	Lines   []string
	Entries []Entry
	Footer  []string
}

// Text renders the sheet as plain text. Entries are numbered from 1 and
// separated by a blank line; their fields are indented five spaces.
func (s Sheet) Text() string {
	entries := make([]string, 0, len(s.Entries))
	for i, e := range s.Entries {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s", i+1, e.Heading)
		for _, f := range e.Fields {
			fmt.Fprintf(&b, "\n     %s: %s", f.Label, f.Value)
		}
		entries = append(entries, b.String())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.Title)
	b.WriteString("\n")
	for _, l := range s.Lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(strings.Join(entries, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(s.Footer, "\n"))
	b.WriteString("\n")
	return b.String()
}

// PDF renders the sheet on A4 pages.
func (s Sheet) PDF() (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(s.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, l := range s.Lines {
		pdf.CellFormat(0, 6, tr(l), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(6)

	for i, e := range s.Entries {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, e.Heading)))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		for _, f := range e.Fields {
			pdf.Cell(10, 5, "")
			pdf.Cell(30, 5, tr(f.Label+":"))
			pdf.Cell(0, 5, tr(f.Value))
			pdf.Ln(5)
		}
		pdf.Ln(3)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 10)
	for _, l := range s.Footer {
		pdf.Cell(0, 5, tr(l))
		pdf.Ln(5)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf, nil
}

// File renders the sheet as "txt" or "pdf" under base + extension.
func (s Sheet) File(format, base string) (*File, error) {
	switch format {
	case "", "txt":
		return &File{Name: base + ".txt", ContentType: ContentTypeText, Body: []byte(s.Text())}, nil
	case "pdf":
		buf, err := s.PDF()
		if err != nil {
			return nil, err
		}
		return &File{Name: base + ".pdf", ContentType: ContentTypePDF, Body: buf.Bytes()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
