// Package priority converts tool specific priorities into severities.
// Some tools rank their findings on a numeric scale (FindBugs bug ranks),
// others label them (high, normal, low). A Mapper is chosen once, when a
// tool creates its parser, and is a pure function afterwards.
package priority

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

// Signal is the native priority of a finding.
// Rank is 0 if the tool didn't report a rank.
type Signal struct {
	Rank  int
	Label string
}

type Mapper interface {
	Severity(s Signal) issue.Severity
}

type MapperFunc func(s Signal) issue.Severity

func (f MapperFunc) Severity(s Signal) issue.Severity {
	return f(s)
}

const (
	ModeRank  = "rank"
	ModeLabel = "label"
)

var ErrUnknownMode = errors.New("unknown priority mode")

// New returns the default mapper of the mode.
func New(mode string) (Mapper, error) {
	switch mode {
	case ModeRank:
		return NewRankMapper(), nil
	case ModeLabel:
		return NewLabelMapper(nil, issue.WarningNormal), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// RankMapper maps a bug rank to a severity. Lower ranks are more severe.
type RankMapper struct {
	buckets []rankBucket
}

type rankBucket struct {
	maxRank  int
	severity issue.Severity
}

const (
	minRank = 1
	maxRank = 20
)

// NewRankMapper returns a mapper using the bug rank scale of FindBugs:
// 1-4 scariest, 5-9 scary, 10-14 troubling and 15-20 of concern.
func NewRankMapper() *RankMapper {
	return &RankMapper{
		buckets: []rankBucket{
			{maxRank: 4, severity: issue.Error},
			{maxRank: 9, severity: issue.WarningHigh},
			{maxRank: 14, severity: issue.WarningNormal},
			{maxRank: maxRank, severity: issue.WarningLow},
		},
	}
}

// Severity maps s.Rank. Ranks out of 1-20 are clamped to the nearest bucket.
func (m *RankMapper) Severity(s Signal) issue.Severity {
	rank := min(max(s.Rank, minRank), maxRank)
	for _, b := range m.buckets {
		if rank <= b.maxRank {
			return b.severity
		}
	}
	return m.buckets[len(m.buckets)-1].severity
}

// LabelMapper maps a priority label to a severity.
type LabelMapper struct {
	labels   map[string]issue.Severity
	fallback issue.Severity
}

// DefaultLabels returns the labels used when NewLabelMapper is given no table.
// Numeric labels follow the FindBugs priority attribute (1 is high).
func DefaultLabels() map[string]issue.Severity {
	return map[string]issue.Severity{
		"error":  issue.Error,
		"high":   issue.WarningHigh,
		"1":      issue.WarningHigh,
		"medium": issue.WarningNormal,
		"normal": issue.WarningNormal,
		"2":      issue.WarningNormal,
		"low":    issue.WarningLow,
		"3":      issue.WarningLow,
	}
}

// NewLabelMapper creates a mapper from a label table. Labels are compared case-insensitively.
// Unknown labels are mapped to fallback, so the mapping is total.
func NewLabelMapper(labels map[string]issue.Severity, fallback issue.Severity) *LabelMapper {
	if labels == nil {
		labels = DefaultLabels()
	}
	m := make(map[string]issue.Severity, len(labels))
	for k, v := range labels {
		m[strings.ToLower(k)] = v
	}
	if !fallback.Valid() {
		fallback = issue.WarningNormal
	}
	return &LabelMapper{labels: m, fallback: fallback}
}

func (m *LabelMapper) Severity(s Signal) issue.Severity {
	if sev, ok := m.labels[strings.ToLower(strings.TrimSpace(s.Label))]; ok {
		return sev
	}
	return m.fallback
}
