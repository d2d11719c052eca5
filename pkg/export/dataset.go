package export

import (
	"fmt"
	"strings"
)

// Format identifies an export encoding.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat defaults to CSV for an empty value.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Dataset defines tabular export content. Widths are relative column weights
// used by the PDF renderer; missing weights default to 1.
type Dataset struct {
	Title   string
	Headers []string
	Widths  []float64
	Rows    []map[string]string
}

func (d Dataset) weight(i int) float64 {
	if i < len(d.Widths) && d.Widths[i] > 0 {
		return d.Widths[i]
	}
	return 1
}

// Render encodes data in the requested format.
func Render(format Format, data Dataset) ([]byte, error) {
	switch format {
	case FormatPDF:
		return NewPDFExporter().Render(data, data.Title)
	default:
		return NewCSVExporter().Render(data)
	}
}
