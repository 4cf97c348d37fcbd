// Package diag defines the diagnostic model shared by the synthesis engine's
// CLI layers. The engine itself returns plain errors; commands classify them
// into Diagnostics so the printer can render severity, code and the request
// target they belong to.
package diag

import "fmt"

// Severity ranks a finding. Synthesis preconditions and bundle failures are
// SevError; manifest/bundle mismatches that generation can survive are
// SevWarning; SevInfo is reserved for notes the printer may suppress.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

type Note struct {
	Msg string
}

// Diagnostic is one classified finding. Target names the synthesis request
// (or file) the finding belongs to; it may be empty for global findings.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Target   string
	Message  string
	Notes    []Note
}

func New(sev Severity, code Code, target, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Target:   target,
		Message:  msg,
	}
}

func NewError(code Code, target, msg string) Diagnostic {
	return New(SevError, code, target, msg)
}

func NewWarning(code Code, target, msg string) Diagnostic {
	return New(SevWarning, code, target, msg)
}

func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Msg: msg})
	return d
}
