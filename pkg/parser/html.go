package parser

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"

	"github.com/jbjulia/mccmnc/internal/models"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

type HTMLParser struct{}

func (p *HTMLParser) Format() string { return FormatHTML }

func (p *HTMLParser) Parse(raw []byte) ([]models.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, srvErrors.NewWrappedFormatError(FormatHTML, "reading document", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, srvErrors.NewFormatError(FormatHTML, "no table found")
	}

	// Rows of nested tables are skipped.
	rows := table.Find("tr").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Closest("table").IsSelection(table)
	})

	records := make([]models.Record, 0, rows.Length())
	var parseErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			return true
		}
		cells := row.ChildrenFiltered("td")
		fields := make([]string, 0, cells.Length())
		cells.Each(func(_ int, c *goquery.Selection) {
			fields = append(fields, c.Text())
		})

		r, err := recordFromFields(FormatHTML, i+1, fields)
		if err != nil {
			parseErr = err
			return false
		}
		records = append(records, r)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if len(records) == 0 {
		return nil, srvErrors.NewFormatError(FormatHTML, "no data rows")
	}
	return records, nil
}
