// Package parser turns a registry payload into records.
//
// Three interchangeable strategies share the Parser interface:
//
//	┌────────┬───────────────────────────────────────────────────────────┐
//	│ Format │ Layout                                                    │
//	├────────┼───────────────────────────────────────────────────────────┤
//	│ html   │ first <table>, first <tr> is the header, then six <td>:   │
//	│        │ MCC, MNC, ISO, COUNTRY, CC, NETWORK                       │
//	│ csv    │ six columns: MCC, MNC, ISO, PLMN (ignored), CC, NETWORK   │
//	│        │ an optional header row starting with "MCC" is skipped     │
//	│ xlsx   │ first sheet, first row is the header, columns as html     │
//	└────────┴───────────────────────────────────────────────────────────┘
//
// Parsing is all or nothing: the first malformed row fails the whole payload
// with a FormatError carrying its row number, and a payload without any data
// row is rejected as well.
package parser

import (
	"fmt"
	"strings"

	"github.com/jbjulia/mccmnc/internal/models"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

const (
	FormatHTML = "html"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// columns is the number of fields of a data row in every format.
const columns = 6

type Parser interface {
	Parse(raw []byte) ([]models.Record, error)
	Format() string
}

// Formats lists the supported formats.
func Formats() []string {
	return []string{FormatHTML, FormatCSV, FormatXLSX}
}

// New returns the parser for format.
func New(format string) (Parser, error) {
	switch strings.ToLower(format) {
	case FormatHTML:
		return &HTMLParser{}, nil
	case FormatCSV:
		return &CSVParser{}, nil
	case FormatXLSX:
		return &XLSXParser{}, nil
	default:
		return nil, srvErrors.NewInvalidInputError("format", format, fmt.Sprintf("must be one of %s", strings.Join(Formats(), ", ")))
	}
}

// recordFromFields builds a record from the html/xlsx column order.
func recordFromFields(format string, row int, fields []string) (models.Record, error) {
	if len(fields) != columns {
		return models.Record{}, srvErrors.NewRowFormatError(format, row, fmt.Sprintf("expected %d columns, got %d", columns, len(fields)))
	}
	r := models.NewRecord(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
	if r.MCC == "" {
		return models.Record{}, srvErrors.NewRowFormatError(format, row, "empty MCC")
	}
	return r, nil
}
