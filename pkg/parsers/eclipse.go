package parsers

import (
	"regexp"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

const IDEclipse = "eclipse"

// EclipsePattern matches a warning block of the Eclipse Java compiler as
// printed by ant and maven, e.g.
//
//	[javac] 1. WARNING in C:\src\Foo.java (at line 3)
//	[javac] 	public class Foo extends RuntimeException {
//	[javac] 	             ^^^
//	[javac] The serializable class Foo does not declare a static final serialVersionUID field of type long
//
// Groups: 1 WARNING or ERROR, 2 file, 3 line (at line N), 4 line and 5 column ([line, column]),
// 6 text before the column pointer, 7 column pointer, 8 message.
const EclipsePattern = `\[?(WARNING|ERROR)\]?\s*(?:in)?\s*(.*)(?:\(at line\s*(\d+)\)|:\[(\d+),\s*(\d+)\]).*(?:\r?\n[^\^\n]*){1,3}\r?\n(.*?)(\^+).*\r?\n(?:\s*\[.*?\]\s*)?(.*)`

var eclipsePattern = regexp.MustCompile(EclipsePattern)

// NewEclipse returns a parser of Eclipse Java compiler output.
func NewEclipse() *parser.DocumentParser {
	return &parser.DocumentParser{
		Origin:  IDEclipse,
		Pattern: eclipsePattern,
		Handle:  handleEclipse,
	}
}

func handleEclipse(r *parser.Record, b *issue.Builder) error {
	sev := issue.WarningNormal
	if r.Group(1) == "ERROR" {
		sev = issue.Error
	}
	line := r.Group(3)
	if line == "" {
		line = r.Group(4)
	}
	b.SetFileName(r.Group(2)).
		Set(issue.FieldLineStart, line).
		SetSeverity(sev).
		SetMessage(r.Group(8))
	if r.Group(5) != "" {
		b.Set(issue.FieldColumnStart, r.Group(5))
		return nil
	}
	start := caretColumn(r.Group(6))
	b.SetColumnStart(start).SetColumnEnd(start + len(r.Group(7)) - 1)
	return nil
}

// caretColumn returns the 1-based column a column pointer line points to.
// The echoed source line is prefixed with a tab, and with a "[javac] " label when printed by ant.
func caretColumn(prefix string) int {
	if i := strings.LastIndex(prefix, "]"); i >= 0 {
		prefix = strings.TrimPrefix(prefix[i+1:], " ")
	} else {
		prefix = strings.TrimLeft(prefix, " ")
	}
	prefix = strings.TrimPrefix(prefix, "\t")
	return len(prefix) + 1
}
