package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jbjulia/mccmnc/internal/models"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVParser reads MCC, MNC, ISO, PLMN, CC, NETWORK rows. The PLMN column is
// ignored since the key is always derived from MCC and MNC, and the format
// carries no country name.
type CSVParser struct{}

func (p *CSVParser) Format() string { return FormatCSV }

func (p *CSVParser) Parse(raw []byte) ([]models.Record, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	reader.FieldsPerRecord = -1

	var records []models.Record
	first := true
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, srvErrors.NewWrappedFormatError(FormatCSV, "reading record", err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(fields[0]), "MCC") {
				continue
			}
		}

		if len(fields) != columns {
			return nil, srvErrors.NewRowFormatError(FormatCSV, line, fmt.Sprintf("expected %d columns, got %d", columns, len(fields)))
		}

		r := models.NewRecord(fields[0], fields[1], fields[2], "", fields[4], fields[5])
		if r.MCC == "" {
			return nil, srvErrors.NewRowFormatError(FormatCSV, line, "empty MCC")
		}
		records = append(records, r)
	}

	if len(records) == 0 {
		return nil, srvErrors.NewFormatError(FormatCSV, "no data rows")
	}
	return records, nil
}
