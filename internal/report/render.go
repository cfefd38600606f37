package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"par2r/internal/archive"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// ShouldColorize reports whether writer is a terminal.
func ShouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Colorize wraps s in the ANSI color for kind.
func Colorize(kind Kind, s string) string {
	color := kindColor(kind)
	if color == "" {
		return s
	}
	return color + s + ansiReset
}

func kindColor(kind Kind) string {
	switch kind {
	case KindOK:
		return ansiGreen
	case KindWarn:
		return ansiYellow
	case KindError:
		return ansiRed
	case KindInfo:
		return ansiBlue
	default:
		return ""
	}
}

// Printer writes outcome lines and summaries.
type Printer struct {
	out      io.Writer
	colorize bool
}

// NewPrinter returns a printer writing to out.
func NewPrinter(out io.Writer, colorize bool) *Printer {
	return &Printer{out: out, colorize: colorize}
}

// Line prints a single outcome.
func (p *Printer) Line(outcome Outcome) error {
	line := outcome.Message
	if p.colorize {
		line = Colorize(outcome.Kind, line)
	}
	_, err := fmt.Fprintln(p.out, line)
	return err
}

// Results classifies and prints each result in order.
func (p *Printer) Results(results []archive.Result) error {
	for _, result := range results {
		if err := p.Line(Classify(result)); err != nil {
			return err
		}
	}
	return nil
}

// Summary prints the per-run totals as a table.
func (p *Printer) Summary(action archive.Action, summary Summary) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("par2 %s", action))
	tw.AppendHeader(table.Row{"Result", "Directories"})
	tw.AppendRow(table.Row{"OK", strconv.Itoa(summary.OK)})
	if action == archive.ActionVerify {
		tw.AppendRow(table.Row{"Repairs needed", strconv.Itoa(summary.Warnings)})
	}
	tw.AppendRow(table.Row{"Errors", strconv.Itoa(summary.Errors)})
	if action.NeedsArchive() {
		tw.AppendRow(table.Row{"  of which missing archive", strconv.Itoa(summary.Missing)})
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(summary.Total)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	_, err := fmt.Fprintf(p.out, "%s\nElapsed: %s\n", tw.Render(), summary.Duration.Round(time.Millisecond))
	return err
}
