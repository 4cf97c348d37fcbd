package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ColorMode selects whether the printer emits ANSI colors.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// Printer renders diagnostics to a writer, one per line:
//
//	ERROR SYN1001 [Target]: message
type Printer struct {
	out     io.Writer
	colored bool
}

// NewPrinter builds a printer. For ColorAuto the caller passes whether the
// destination is a terminal.
func NewPrinter(out io.Writer, mode ColorMode, isTerminal bool) *Printer {
	colored := mode == ColorOn || (mode == ColorAuto && isTerminal)
	return &Printer{out: out, colored: colored}
}

func (p *Printer) Print(d Diagnostic) {
	sev := d.Severity.String()
	if p.colored {
		switch d.Severity {
		case SevError:
			sev = errorColor.Sprint(sev)
		case SevWarning:
			sev = warningColor.Sprint(sev)
		default:
			sev = infoColor.Sprint(sev)
		}
	}
	if d.Target != "" {
		fmt.Fprintf(p.out, "%s %s [%s]: %s\n", sev, d.Code.ID(), d.Target, d.Message)
	} else {
		fmt.Fprintf(p.out, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(p.out, "  note: %s\n", n.Msg)
	}
}

// PrintBag renders every diagnostic in the bag.
func (p *Printer) PrintBag(b *Bag) {
	if b == nil {
		return
	}
	for _, d := range b.Items() {
		p.Print(d)
	}
}
