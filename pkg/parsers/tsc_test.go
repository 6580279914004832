package parsers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parsers"
)

func TestTypeScript(t *testing.T) {
	t.Parallel()
	log := "src/app.ts(12,5): error TS2322: Type 'string' is not assignable to type 'number'.\r\n" +
		"src/util.ts:3:10 - error TS6133: 'x' is declared but its value is never read.\n" +
		"\n" +
		"Found 2 errors in 2 files.\n"
	report, err := parsers.NewTypeScript().Parse(text("tsc.log", log))
	if err != nil {
		t.Fatal(err)
	}
	exp := []issue.Issue{
		{
			FileName:    "src/app.ts",
			LineStart:   12,
			LineEnd:     12,
			ColumnStart: 5,
			ColumnEnd:   5,
			Severity:    issue.Error,
			Category:    "typescript",
			Type:        "TS2322",
			Message:     "Type 'string' is not assignable to type 'number'.",
			Origin:      parsers.IDTypeScript,
		},
		{
			FileName:    "src/util.ts",
			LineStart:   3,
			LineEnd:     3,
			ColumnStart: 10,
			ColumnEnd:   10,
			Severity:    issue.Error,
			Category:    "typescript",
			Type:        "TS6133",
			Message:     "'x' is declared but its value is never read.",
			Origin:      parsers.IDTypeScript,
		},
	}
	if diff := cmp.Diff(exp, report.Issues()); diff != "" {
		t.Fatal(diff)
	}
}
