// Package parser is the engine turning tool output into issue reports.
//
// A Parser first looks at the Header of an input to decide whether it can
// handle it and then parses the whole input. LineParser and DocumentParser
// implement the two regular expression based shapes, and Suite runs several
// parsers over the same input and concatenates their reports in order.
//
// Records which can't be turned into a valid issue are skipped and counted in
// Report.Skipped. Only I/O and decoding failures are returned as errors.
package parser

import (
	"errors"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

type Parser interface {
	Accepts(h *Header) bool
	Parse(in *Input) (*issue.Report, error)
}

// ErrNoIssue is returned by a Handler for a record which only updates the parse state.
var ErrNoIssue = errors.New("no issue")

// Record is one match of a parser pattern.
type Record struct {
	// Number is the line number where the match starts.
	Number int
	Text   string
	// Groups are the submatches. Groups[0] is the whole match.
	Groups []string
	// Names are the names of the capturing groups, as returned by regexp.Regexp.SubexpNames.
	Names []string
	// State is shared by all records of one Parse call.
	State map[string]string
}

// Group returns the i-th submatch or "" if it doesn't exist.
func (r *Record) Group(i int) string {
	if i < 0 || i >= len(r.Groups) {
		return ""
	}
	return r.Groups[i]
}

// Named returns the submatch of the named group or "" if it doesn't exist.
func (r *Record) Named(name string) string {
	for i, n := range r.Names {
		if n == name && n != "" {
			return r.Group(i)
		}
	}
	return ""
}

// Handler fills the builder from a record.
// The builder is reset and its origin is set before the handler is called.
type Handler func(r *Record, b *issue.Builder) error

// AcceptFunc decides whether a parser can handle an input.
type AcceptFunc func(h *Header) bool

// AcceptText accepts inputs which are neither XML nor JSON documents.
func AcceptText(h *Header) bool {
	return h.IsText()
}

// AcceptAll accepts every input.
func AcceptAll(*Header) bool {
	return true
}

func accepts(fn AcceptFunc, h *Header) bool {
	if fn == nil {
		return AcceptText(h)
	}
	return fn(h)
}

// build runs the handler and adds the issue to the report.
func build(report *issue.Report, b *issue.Builder, origin string, in *Input, r *Record, handle Handler) {
	b.Reset().SetOrigin(origin)
	if err := handle(r, b); err != nil {
		if !errors.Is(err, ErrNoIssue) {
			report.AddSkipped(1)
		}
		return
	}
	is, err := b.MapFileName(in.Transform).Build()
	if err != nil {
		report.AddSkipped(1)
		return
	}
	report.Add(is)
}
