package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jbjulia/mccmnc/internal/models"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

// XLSXParser reads the first worksheet of a workbook. Columns follow the html
// layout. Workbooks drop trailing empty cells, so short rows are padded as
// long as they hold at least MCC and MNC.
type XLSXParser struct{}

func (p *XLSXParser) Format() string { return FormatXLSX }

func (p *XLSXParser) Parse(raw []byte) ([]models.Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, srvErrors.NewWrappedFormatError(FormatXLSX, "opening workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, srvErrors.NewFormatError(FormatXLSX, "workbook has no sheet")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, srvErrors.NewWrappedFormatError(FormatXLSX, fmt.Sprintf("reading sheet %q", sheets[0]), err)
	}

	var records []models.Record
	for i, cells := range rows {
		if i == 0 || blank(cells) {
			continue
		}
		if len(cells) < 2 || len(cells) > columns {
			return nil, srvErrors.NewRowFormatError(FormatXLSX, i+1, fmt.Sprintf("expected 2 to %d columns, got %d", columns, len(cells)))
		}
		fields := make([]string, columns)
		copy(fields, cells)

		r, err := recordFromFields(FormatXLSX, i+1, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if len(records) == 0 {
		return nil, srvErrors.NewFormatError(FormatXLSX, "no data rows")
	}
	return records, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
