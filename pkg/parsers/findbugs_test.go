package parsers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
	"github.com/suzuki-shunsuke/warnings/pkg/parsers"
)

func TestFindBugs(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		useRank    bool
		severities []issue.Severity
	}{
		{
			name:       "rank",
			useRank:    true,
			severities: []issue.Severity{issue.Error, issue.WarningLow, issue.WarningNormal},
		},
		{
			name:       "priority",
			severities: []issue.Severity{issue.WarningHigh, issue.WarningNormal, issue.WarningHigh},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			report, err := parsers.NewFindBugs(d.useRank).Parse(testdata("findbugsXml.xml"))
			if err != nil {
				t.Fatal(err)
			}
			exp := []issue.Issue{
				{
					FileName:    "jfg/model/Graph.java",
					LineStart:   120,
					LineEnd:     120,
					Severity:    d.severities[0],
					Category:    "CORRECTNESS",
					Type:        "NP_NULL_ON_SOME_PATH",
					Message:     "Possible null pointer dereference of name in jfg.model.Graph.addNode(String)",
					PackageName: "jfg.model",
					ModuleName:  "jfg",
					Origin:      parsers.IDFindBugs,
				},
				{
					FileName:    "jfg/AttributeException.java",
					LineStart:   3,
					LineEnd:     12,
					Severity:    d.severities[1],
					Category:    "BAD_PRACTICE",
					Type:        "SE_NO_SERIALVERSIONID",
					Message:     "jfg.AttributeException is Serializable; consider declaring a serialVersionUID",
					PackageName: "jfg",
					ModuleName:  "jfg",
					Origin:      parsers.IDFindBugs,
				},
				{
					FileName:   "Main.java",
					LineStart:  38,
					LineEnd:    40,
					Severity:   d.severities[2],
					Category:   "I18N",
					Type:       "DM_DEFAULT_ENCODING",
					Message:    "Reliance on default encoding",
					ModuleName: "jfg",
					Origin:     parsers.IDFindBugs,
				},
			}
			if diff := cmp.Diff(exp, report.Issues()); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestFindBugs_withoutRanks(t *testing.T) {
	t.Parallel()
	report, err := parsers.NewFindBugs(true).Parse(testdata("findbugs-1.3.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if report.Size() != 1 {
		t.Fatalf("wanted 1 issue, got %d", report.Size())
	}
	is := report.Get(0)
	if is.Severity != issue.WarningLow {
		t.Fatalf("reports older than 2.0 must use the priority: %v", is.Severity)
	}
	if is.PackageName != "org.legacy" || is.ModuleName != "legacy" {
		t.Fatalf("unexpected package or module: %+v", is)
	}
}

func TestFindBugs_Accepts(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		in   *parser.Input
		exp  bool
	}{
		{name: "findbugs", in: testdata("findbugsXml.xml"), exp: true},
		{name: "checkstyle", in: testdata("checkstyle.xml")},
		{name: "text", in: text("build.log", "BugCollection\n")},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			h, err := parser.ReadHeader(d.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := parsers.NewFindBugs(false).Accepts(h); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}

func TestFindBugs_brokenXML(t *testing.T) {
	t.Parallel()
	report, err := parsers.NewFindBugs(false).Parse(text("findbugsXml.xml", `<BugCollection version="3.1.0">
<BugInstance type="A" priority="1"><LongMessage>first</LongMessage><SourceLine sourcepath="A.java" start="1"/></BugInstance>
<BugInstance type="B" priority="1"><LongMessage>broken</BugInstance>
`))
	if err != nil {
		t.Fatal(err)
	}
	if report.Size() != 1 || report.Skipped() != 1 {
		t.Fatalf("wanted 1 issue and 1 skipped record, got %d and %d", report.Size(), report.Skipped())
	}
}
