package scan

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

type colorFunc func(a ...any) string

// Logger writes issues in a human readable format.
type Logger struct {
	stdout io.Writer
	red    colorFunc
	yellow colorFunc
	cyan   colorFunc
	faint  colorFunc
}

func NewLogger(stdout io.Writer) *Logger {
	return &Logger{
		stdout: stdout,
		red:    color.New(color.FgRed).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
		faint:  color.New(color.Faint).SprintFunc(),
	}
}

func (l *Logger) severity(sev issue.Severity) string {
	switch sev {
	case issue.Error:
		return l.red(sev.String())
	case issue.WarningHigh:
		return l.yellow(sev.String())
	case issue.WarningNormal:
		return l.cyan(sev.String())
	default:
		return l.faint(sev.String())
	}
}

// Output writes each issue and a summary line.
func (l *Logger) Output(report *issue.Report) {
	for _, is := range report.Issues() {
		kind := is.Type
		if is.Category != "" && kind != "" {
			kind = is.Category + "/" + kind
		}
		if kind != "" {
			kind = " [" + kind + "]"
		}
		fmt.Fprintf(l.stdout, "%s %s%s\n%s\n", l.severity(is.Severity), is.Origin, kind, is.Location())
		if is.Message != "" {
			fmt.Fprintln(l.stdout, is.Message)
		}
	}
	fmt.Fprintln(l.stdout, l.summary(report))
}

func (l *Logger) summary(report *issue.Report) string {
	counts := report.CountBySeverity()
	sevs := issue.Severities()
	elems := make([]string, 0, len(sevs))
	for i := len(sevs) - 1; i >= 0; i-- {
		elems = append(elems, fmt.Sprintf("%s: %d", sevs[i], counts[sevs[i]]))
	}
	s := fmt.Sprintf("%d issues (%s)", report.Size(), strings.Join(elems, ", "))
	if report.Skipped() > 0 {
		s += fmt.Sprintf(", %d records skipped", report.Skipped())
	}
	return s
}
