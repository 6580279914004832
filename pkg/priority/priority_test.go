package priority_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/priority"
)

func TestRankMapper_Severity(t *testing.T) {
	t.Parallel()
	data := []struct {
		rank int
		exp  issue.Severity
	}{
		{rank: -5, exp: issue.Error},
		{rank: 0, exp: issue.Error},
		{rank: 1, exp: issue.Error},
		{rank: 4, exp: issue.Error},
		{rank: 5, exp: issue.WarningHigh},
		{rank: 9, exp: issue.WarningHigh},
		{rank: 10, exp: issue.WarningNormal},
		{rank: 14, exp: issue.WarningNormal},
		{rank: 15, exp: issue.WarningLow},
		{rank: 20, exp: issue.WarningLow},
		{rank: 100, exp: issue.WarningLow},
	}
	m := priority.NewRankMapper()
	for _, d := range data {
		t.Run(strconv.Itoa(d.rank), func(t *testing.T) {
			t.Parallel()
			if got := m.Severity(priority.Signal{Rank: d.rank}); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}

func TestRankMapper_monotonic(t *testing.T) {
	t.Parallel()
	m := priority.NewRankMapper()
	prev := m.Severity(priority.Signal{Rank: -1})
	for rank := 0; rank <= 25; rank++ {
		got := m.Severity(priority.Signal{Rank: rank})
		if got > prev {
			t.Fatalf("rank %d is mapped to %v which is more severe than %v", rank, got, prev)
		}
		prev = got
	}
}

func TestLabelMapper_Severity(t *testing.T) {
	t.Parallel()
	data := []struct {
		name   string
		labels map[string]issue.Severity
		label  string
		exp    issue.Severity
	}{
		{name: "high", label: "high", exp: issue.WarningHigh},
		{name: "case insensitive", label: "HIGH", exp: issue.WarningHigh},
		{name: "medium", label: "medium", exp: issue.WarningNormal},
		{name: "low", label: "low", exp: issue.WarningLow},
		{name: "numeric", label: "1", exp: issue.WarningHigh},
		{name: "unknown label", label: "whatever", exp: issue.WarningNormal},
		{name: "empty label", label: "", exp: issue.WarningNormal},
		{
			name:   "custom table",
			labels: map[string]issue.Severity{"E": issue.Error, "C": issue.WarningLow},
			label:  "e",
			exp:    issue.Error,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			m := priority.NewLabelMapper(d.labels, issue.WarningNormal)
			if got := m.Severity(priority.Signal{Label: d.label}); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	rank, err := priority.New(priority.ModeRank)
	if err != nil {
		t.Fatal(err)
	}
	label, err := priority.New(priority.ModeLabel)
	if err != nil {
		t.Fatal(err)
	}
	s := priority.Signal{Rank: 2, Label: "low"}
	if got := rank.Severity(s); got != issue.Error {
		t.Fatalf("rank mode: wanted ERROR, got %v", got)
	}
	if got := label.Severity(s); got != issue.WarningLow {
		t.Fatalf("label mode: wanted WARNING_LOW, got %v", got)
	}
	if _, err := priority.New("random"); !errors.Is(err, priority.ErrUnknownMode) {
		t.Fatalf("error must be ErrUnknownMode: %v", err)
	}
}
