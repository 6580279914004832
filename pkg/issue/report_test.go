package issue_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

func newIssue(t *testing.T, file string, line int, msg string) issue.Issue {
	t.Helper()
	is, err := issue.NewBuilder().SetFileName(file).SetLineStart(line).SetMessage(msg).Build()
	if err != nil {
		t.Fatal(err)
	}
	return is
}

func TestReport_AddAll(t *testing.T) {
	t.Parallel()
	a := newIssue(t, "a.c", 1, "a")
	b := newIssue(t, "b.c", 2, "b")
	c := newIssue(t, "c.c", 3, "c")

	first := issue.NewReport(a, b)
	first.AddSkipped(1)
	second := issue.NewReport(c, a)
	second.AddSkipped(2)

	all := issue.NewReport()
	all.AddAll(first, nil, second)
	if diff := cmp.Diff([]issue.Issue{a, b, c, a}, all.Issues()); diff != "" {
		t.Fatal(diff)
	}
	if all.Skipped() != 3 {
		t.Fatalf("skipped: wanted 3, got %d", all.Skipped())
	}
	if all.Size() != first.Size()+second.Size() {
		t.Fatalf("size must be the sum of the sizes: %d", all.Size())
	}
}

func TestReport_AddAll_associative(t *testing.T) {
	t.Parallel()
	x := issue.NewReport(newIssue(t, "x", 1, "x"))
	y := issue.NewReport(newIssue(t, "y", 1, "y"), newIssue(t, "y", 2, "y"))
	z := issue.NewReport(newIssue(t, "z", 1, "z"))

	yz := issue.NewReport()
	yz.AddAll(y, z)
	left := issue.NewReport()
	left.AddAll(x, yz)

	xy := issue.NewReport()
	xy.AddAll(x, y)
	right := issue.NewReport()
	right.AddAll(xy, z)

	if !left.Equal(right) {
		t.Fatalf("concatenation must be associative:\n%v\n%v", left.Issues(), right.Issues())
	}
}

func TestReport_Equal(t *testing.T) {
	t.Parallel()
	a := newIssue(t, "a.c", 1, "a")
	b := newIssue(t, "b.c", 2, "b")
	data := []struct {
		name  string
		left  *issue.Report
		right *issue.Report
		exp   bool
	}{
		{name: "empty", left: issue.NewReport(), right: issue.NewReport(), exp: true},
		{name: "same order", left: issue.NewReport(a, b), right: issue.NewReport(a, b), exp: true},
		{name: "different order", left: issue.NewReport(a, b), right: issue.NewReport(b, a), exp: false},
		{name: "different size", left: issue.NewReport(a), right: issue.NewReport(a, a), exp: false},
		{name: "nil", left: issue.NewReport(), right: nil, exp: false},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := d.left.Equal(d.right); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}

func TestReport_Get(t *testing.T) {
	t.Parallel()
	a := newIssue(t, "a.c", 1, "a")
	r := issue.NewReport(a)
	got := r.Get(0)
	got.Message = "changed"
	if r.Get(0).Message != "a" {
		t.Fatal("the stored issue must not be changed through a copy")
	}
	issues := r.Issues()
	issues[0].FileName = "changed"
	if r.Get(0).FileName != "a.c" {
		t.Fatal("the stored issue must not be changed through Issues")
	}
}

func TestReport_Unique(t *testing.T) {
	t.Parallel()
	a := newIssue(t, "a.c", 1, "a")
	b := newIssue(t, "b.c", 2, "b")
	r := issue.NewReport(a, b, a, b, a)
	if r.Size() != 5 {
		t.Fatalf("duplicates must be kept until Unique is called: %d", r.Size())
	}
	if diff := cmp.Diff([]issue.Issue{a, b}, r.Unique().Issues()); diff != "" {
		t.Fatal(diff)
	}
}

func TestReport_Filter(t *testing.T) {
	t.Parallel()
	low, err := issue.NewBuilder().SetMessage("low").SetSeverity(issue.WarningLow).Build()
	if err != nil {
		t.Fatal(err)
	}
	high, err := issue.NewBuilder().SetMessage("high").SetSeverity(issue.WarningHigh).Build()
	if err != nil {
		t.Fatal(err)
	}
	r := issue.NewReport(low, high, low)
	got := r.Filter(func(is issue.Issue) bool {
		return is.Severity.AtLeast(issue.WarningNormal)
	})
	if diff := cmp.Diff([]issue.Issue{high}, got.Issues()); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff(map[issue.Severity]int{issue.WarningLow: 2, issue.WarningHigh: 1}, r.CountBySeverity()); diff != "" {
		t.Fatal(diff)
	}
}

func TestReport_WithFingerprints(t *testing.T) {
	t.Parallel()
	a := newIssue(t, "a.c", 1, "unused  variable")
	moved := newIssue(t, "a.c", 20, "unused variable")
	preset, err := issue.NewBuilder().SetMessage("x").SetFingerprint("fixed").Build()
	if err != nil {
		t.Fatal(err)
	}
	r := issue.NewReport(a, moved, preset).WithFingerprints()
	if r.Get(0).Fingerprint == "" {
		t.Fatal("fingerprint must be set")
	}
	if r.Get(0).Fingerprint != r.Get(1).Fingerprint {
		t.Fatal("fingerprint must not depend on the line number")
	}
	if r.Get(2).Fingerprint != "fixed" {
		t.Fatalf("a fingerprint set by a parser must be kept: %s", r.Get(2).Fingerprint)
	}
}

func TestReport_MarshalJSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(issue.NewReport())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[]" {
		t.Fatalf("an empty report must be an empty array: %s", string(b))
	}
	r := issue.NewReport(newIssue(t, "a.c", 1, "a"))
	b, err = json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	exp := `[{"file_name":"a.c","line_start":1,"line_end":1,"severity":"WARNING_NORMAL","message":"a"}]`
	if string(b) != exp {
		t.Fatalf("wanted %s, got %s", exp, string(b))
	}
}
