// Package issue defines the normalized finding produced by every parser.
// An Issue is a plain value: once a Builder has created it nobody changes it,
// and a Report only ever hands out copies.
package issue

import "strconv"

// Issue is one normalized finding.
// Line and column numbers are 1-based and 0 means unknown.
type Issue struct {
	FileName    string   `json:"file_name"`
	LineStart   int      `json:"line_start,omitempty"`
	LineEnd     int      `json:"line_end,omitempty"`
	ColumnStart int      `json:"column_start,omitempty"`
	ColumnEnd   int      `json:"column_end,omitempty"`
	Severity    Severity `json:"severity"`
	Category    string   `json:"category,omitempty"`
	Type        string   `json:"type,omitempty"`
	Message     string   `json:"message"`
	PackageName string   `json:"package_name,omitempty"`
	ModuleName  string   `json:"module_name,omitempty"`
	Origin      string   `json:"origin,omitempty"`
	Fingerprint string   `json:"fingerprint,omitempty"`
}

// Location formats the position of the issue as file:line:column.
// Unknown parts are omitted.
func (i Issue) Location() string {
	s := i.FileName
	if i.LineStart == 0 {
		return s
	}
	s += ":" + strconv.Itoa(i.LineStart)
	if i.ColumnStart == 0 {
		return s
	}
	return s + ":" + strconv.Itoa(i.ColumnStart)
}

// Field names accepted by Builder.Set.
const (
	FieldFileName    = "file_name"
	FieldLineStart   = "line_start"
	FieldLineEnd     = "line_end"
	FieldColumnStart = "column_start"
	FieldColumnEnd   = "column_end"
	FieldSeverity    = "severity"
	FieldCategory    = "category"
	FieldType        = "type"
	FieldMessage     = "message"
	FieldPackageName = "package_name"
	FieldModuleName  = "module_name"
	FieldFingerprint = "fingerprint"
)

// Fields returns the names of every field that can be set by name.
func Fields() []string {
	return []string{
		FieldFileName,
		FieldLineStart,
		FieldLineEnd,
		FieldColumnStart,
		FieldColumnEnd,
		FieldSeverity,
		FieldCategory,
		FieldType,
		FieldMessage,
		FieldPackageName,
		FieldModuleName,
		FieldFingerprint,
	}
}

// IsField reports whether name is a field accepted by Builder.Set.
func IsField(name string) bool {
	for _, f := range Fields() {
		if f == name {
			return true
		}
	}
	return false
}
