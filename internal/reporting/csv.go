package reporting

import (
	"strings"
	"time"
)

// csvDateLayout is the fixed human-readable date convention for the CSV body.
// The stored timestamps stay RFC3339 on the JSON side; the export never
// inherits the server locale.
const csvDateLayout = "Jan 2, 2006"

var csvHeader = []string{"ID", "Visitor Name", "Email", "Phone", "Product", "Category", "Date"}

// buildCSV renders the export feed: an unquoted header, one fully quoted row
// per inquiry, no trailing newline.
func buildCSV(rows []ExportRow) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for _, row := range rows {
		fields := []string{
			row.ID.Hex(),
			orNA(row.VisitorName),
			orNA(row.VisitorEmail),
			orNA(row.VisitorPhone),
			orNA(row.ProductName),
			orNA(row.ProductCategory),
			dateOrNA(row.InquiryDate),
		}
		b.WriteByte('\n')
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteField(field))
		}
	}

	return []byte(b.String())
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func dateOrNA(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.UTC().Format(csvDateLayout)
}
