// Package output renders lookup results and update summaries for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	v1 "github.com/jbjulia/mccmnc/api/v1"
	"github.com/jbjulia/mccmnc/internal/models"
	"github.com/jbjulia/mccmnc/internal/services"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// NoMatch is printed when a text query returns nothing.
const NoMatch = "No match found."

type Printer struct {
	w      io.Writer
	format string
	title  *color.Color
	label  *color.Color
}

// NewPrinter returns a printer writing to w. Colors are enabled only when w
// is a terminal.
func NewPrinter(w io.Writer, format string) (*Printer, error) {
	if format != FormatText && format != FormatJSON {
		return nil, srvErrors.NewInvalidInputError("output", format, "must be text or json")
	}

	p := &Printer{
		w:      w,
		format: format,
		title:  color.New(color.Bold, color.FgHiBlue),
		label:  color.New(color.Bold),
	}
	if !IsTerminal(w) {
		p.title.DisableColor()
		p.label.DisableColor()
	} else {
		p.title.EnableColor()
		p.label.EnableColor()
	}
	return p, nil
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) Matches(result *services.LookupResult) error {
	if p.format == FormatJSON {
		return p.json(v1.NewNetworkList(result))
	}

	if len(result.Matches) == 0 {
		_, err := fmt.Fprintln(p.w, NoMatch)
		return err
	}

	for _, m := range result.Matches {
		if err := p.record(m.Key, m.Record); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) record(key string, r models.Record) error {
	if _, err := p.title.Fprintf(p.w, "PLMN: %s\n", key); err != nil {
		return err
	}
	fields := []struct{ label, value string }{
		{"Mobile Country Code (MCC):", r.MCC},
		{"Mobile Network Code (MNC):", r.MNC},
		{"ISO:", r.ISO},
		{"Country:", r.Country},
		{"Country Code (CC):", r.CC},
		{"Network:", r.Network},
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(p.w, "  %s %s\n", p.label.Sprint(f.label), f.value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w)
	return err
}

// UpdateSummary prints the outcome of an ingestion run.
func (p *Printer) UpdateSummary(path string, result *models.UpdateResult) error {
	if p.format == FormatJSON {
		return p.json(v1.NewUpdateResult(result))
	}

	if _, err := fmt.Fprintf(p.w, "%s %d records from %s (%s)\n",
		p.label.Sprint("Ingested"), result.Rows, result.Source, result.Format); err != nil {
		return err
	}
	if len(result.Collisions) > 0 {
		if _, err := fmt.Fprintf(p.w, "%s %d duplicate PLMN rows kept under suffixed keys\n",
			p.label.Sprint("Collisions:"), len(result.Collisions)); err != nil {
			return err
		}
		for _, c := range result.Collisions {
			if _, err := fmt.Fprintf(p.w, "  %s -> %s\n", c.PLMN, c.Key); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(p.w, "%s %s (%s) in %s\n",
		p.label.Sprint("Saved"), path, humanize.Bytes(uint64(result.Bytes)), result.Duration.Round(time.Millisecond))
	return err
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
