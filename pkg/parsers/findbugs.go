package parsers

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
	"github.com/suzuki-shunsuke/warnings/pkg/priority"
)

const IDFindBugs = "findbugs"

// bug ranks were added in FindBugs 2.0
var findBugsRankVersion = version.Must(version.NewVersion("2.0.0")) //nolint:gochecknoglobals

// FindBugs parses the XML reports of FindBugs and SpotBugs.
type FindBugs struct {
	useRank bool
	rank    priority.Mapper
	label   priority.Mapper
}

// NewFindBugs returns a FindBugs parser.
// If useRankAsPriority is true, severities are derived from bug ranks, otherwise from the priority attribute.
// Reports without ranks always use the priority attribute.
func NewFindBugs(useRankAsPriority bool) *FindBugs {
	return &FindBugs{
		useRank: useRankAsPriority,
		rank:    priority.NewRankMapper(),
		label:   priority.NewLabelMapper(nil, issue.WarningNormal),
	}
}

func (p *FindBugs) Accepts(h *parser.Header) bool {
	return h.IsXML() && h.Contains("<BugCollection")
}

type bugInstance struct {
	Type         string           `xml:"type,attr"`
	Priority     string           `xml:"priority,attr"`
	Rank         string           `xml:"rank,attr"`
	Category     string           `xml:"category,attr"`
	ShortMessage string           `xml:"ShortMessage"`
	LongMessage  string           `xml:"LongMessage"`
	Classes      []bugClass       `xml:"Class"`
	SourceLines  []bugSourceLine  `xml:"SourceLine"`
	Methods      []bugMethodOrVar `xml:"Method"`
}

type bugClass struct {
	ClassName  string         `xml:"classname,attr"`
	SourceLine *bugSourceLine `xml:"SourceLine"`
}

type bugMethodOrVar struct {
	SourceLine *bugSourceLine `xml:"SourceLine"`
}

type bugSourceLine struct {
	ClassName  string `xml:"classname,attr"`
	Start      string `xml:"start,attr"`
	End        string `xml:"end,attr"`
	SourceFile string `xml:"sourcefile,attr"`
	SourcePath string `xml:"sourcepath,attr"`
	Primary    string `xml:"primary,attr"`
}

type findBugsState struct {
	hasRank bool
	module  string
}

func (p *FindBugs) Parse(in *parser.Input) (*issue.Report, error) {
	report := issue.NewReport()
	b := issue.NewBuilder()
	state := &findBugsState{hasRank: true}
	if err := walkXML(in, report, func(dec *xml.Decoder, se xml.StartElement) error {
		switch se.Name.Local {
		case "BugCollection":
			state.hasRank = hasBugRanks(attr(se, "version"))
		case "Project":
			state.module = attr(se, "projectName")
		case "BugInstance":
			bug := &bugInstance{}
			if err := dec.DecodeElement(bug, &se); err != nil {
				return fmt.Errorf("decode BugInstance: %w", err)
			}
			is, err := p.build(b, in, state, bug)
			if err != nil {
				return err
			}
			report.Add(is)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return report, nil
}

func hasBugRanks(v string) bool {
	if v == "" {
		return true
	}
	ver, err := version.NewVersion(v)
	if err != nil {
		return true
	}
	return !ver.LessThan(findBugsRankVersion)
}

func (p *FindBugs) severity(state *findBugsState, bug *bugInstance) issue.Severity {
	if p.useRank && state.hasRank && bug.Rank != "" {
		if rank, err := strconv.Atoi(strings.TrimSpace(bug.Rank)); err == nil {
			return p.rank.Severity(priority.Signal{Rank: rank})
		}
	}
	return p.label.Severity(priority.Signal{Label: bug.Priority})
}

// primarySourceLine returns the source line FindBugs reports the bug at.
func (bug *bugInstance) primarySourceLine() *bugSourceLine {
	for i, sl := range bug.SourceLines {
		if sl.Primary == "true" {
			return &bug.SourceLines[i]
		}
	}
	if len(bug.SourceLines) > 0 {
		return &bug.SourceLines[0]
	}
	for _, m := range bug.Methods {
		if m.SourceLine != nil {
			return m.SourceLine
		}
	}
	for _, c := range bug.Classes {
		if c.SourceLine != nil {
			return c.SourceLine
		}
	}
	return nil
}

func (p *FindBugs) build(b *issue.Builder, in *parser.Input, state *findBugsState, bug *bugInstance) (issue.Issue, error) {
	msg := bug.LongMessage
	if msg == "" {
		msg = bug.ShortMessage
	}
	if msg == "" {
		msg = bug.Type
	}
	b.Reset().
		SetOrigin(IDFindBugs).
		SetType(bug.Type).
		SetCategory(bug.Category).
		SetSeverity(p.severity(state, bug)).
		SetMessage(msg).
		SetModuleName(state.module)
	className := ""
	if len(bug.Classes) > 0 {
		className = bug.Classes[0].ClassName
	}
	if sl := bug.primarySourceLine(); sl != nil {
		file := sl.SourcePath
		if file == "" {
			file = sl.SourceFile
		}
		b.SetFileName(file).
			Set(issue.FieldLineStart, sl.Start).
			Set(issue.FieldLineEnd, sl.End)
		if className == "" {
			className = sl.ClassName
		}
	}
	if i := strings.LastIndex(className, "."); i > 0 {
		b.SetPackageName(className[:i])
	}
	is, err := b.MapFileName(in.Transform).Build()
	if err != nil {
		return issue.Issue{}, fmt.Errorf("build an issue: %w", err)
	}
	return is, nil
}
