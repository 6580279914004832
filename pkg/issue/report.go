package issue

import (
	"encoding/json"
)

// Report is an ordered collection of issues.
// Insertion order is kept and duplicates aren't removed unless Unique is called.
// A Report isn't safe for concurrent modification.
type Report struct {
	issues  []Issue
	skipped int
}

func NewReport(issues ...Issue) *Report {
	r := &Report{}
	r.Add(issues...)
	return r
}

func (r *Report) Add(issues ...Issue) {
	r.issues = append(r.issues, issues...)
}

// AddAll appends the issues of every report in argument order.
// Skipped record counters are summed.
func (r *Report) AddAll(reports ...*Report) {
	for _, other := range reports {
		if other == nil {
			continue
		}
		r.issues = append(r.issues, other.issues...)
		r.skipped += other.skipped
	}
}

func (r *Report) Size() int {
	return len(r.issues)
}

func (r *Report) IsEmpty() bool {
	return len(r.issues) == 0
}

// Get returns a copy of the i-th issue. It panics if i is out of range.
func (r *Report) Get(i int) Issue {
	return r.issues[i]
}

// Issues returns a copy of the issues.
func (r *Report) Issues() []Issue {
	issues := make([]Issue, len(r.issues))
	copy(issues, r.issues)
	return issues
}

// Skipped returns the number of malformed records parsers skipped while creating the report.
func (r *Report) Skipped() int {
	return r.skipped
}

func (r *Report) AddSkipped(n int) {
	r.skipped += n
}

// Equal reports whether both reports hold equal issues in the same order.
// The skipped record counter isn't compared.
func (r *Report) Equal(other *Report) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.issues) != len(other.issues) {
		return false
	}
	for i, is := range r.issues {
		if is != other.issues[i] {
			return false
		}
	}
	return true
}

// Filter returns a new report with the issues fn returns true for.
func (r *Report) Filter(fn func(Issue) bool) *Report {
	filtered := &Report{skipped: r.skipped}
	for _, is := range r.issues {
		if fn(is) {
			filtered.issues = append(filtered.issues, is)
		}
	}
	return filtered
}

// Unique returns a new report without duplicated issues.
// The first occurrence of each issue is kept.
func (r *Report) Unique() *Report {
	seen := make(map[Issue]struct{}, len(r.issues))
	return r.Filter(func(is Issue) bool {
		if _, ok := seen[is]; ok {
			return false
		}
		seen[is] = struct{}{}
		return true
	})
}

// CountBySeverity returns the number of issues per severity.
func (r *Report) CountBySeverity() map[Severity]int {
	m := make(map[Severity]int, len(severityNames))
	for _, is := range r.issues {
		m[is.Severity]++
	}
	return m
}

// WithFingerprints returns a new report in which every issue has a fingerprint.
// Fingerprints set by parsers are kept.
func (r *Report) WithFingerprints() *Report {
	out := &Report{
		issues:  make([]Issue, len(r.issues)),
		skipped: r.skipped,
	}
	for i, is := range r.issues {
		if is.Fingerprint == "" {
			is.Fingerprint = Fingerprint(is)
		}
		out.issues[i] = is
	}
	return out
}

func (r *Report) MarshalJSON() ([]byte, error) {
	issues := r.issues
	if issues == nil {
		issues = []Issue{}
	}
	return json.Marshal(issues) //nolint:wrapcheck
}
