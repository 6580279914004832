package issue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidField = errors.New("invalid issue field")

// Builder creates Issues.
//
// A Builder keeps its state between calls of Build, so values shared by
// several issues (an origin, a module name) are set once.
// Call Reset to start a new issue from the defaults.
// A Builder isn't safe for concurrent use.
type Builder struct {
	issue Issue
	err   error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Reset restores the default value of every field and clears a pending error.
func (b *Builder) Reset() *Builder {
	b.issue = Issue{}
	b.err = nil
	return b
}

// Copy loads every field of i into the builder.
func (b *Builder) Copy(i Issue) *Builder {
	b.issue = i
	b.err = nil
	return b
}

// SetFileName sets the file name. Windows path separators are converted to '/'.
func (b *Builder) SetFileName(name string) *Builder {
	b.issue.FileName = strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	return b
}

// MapFileName replaces the current file name with fn(name).
// A nil fn and an empty file name are left alone.
func (b *Builder) MapFileName(fn func(string) string) *Builder {
	if fn != nil && b.issue.FileName != "" {
		b.issue.FileName = fn(b.issue.FileName)
	}
	return b
}

func (b *Builder) SetLineStart(n int) *Builder {
	b.issue.LineStart = n
	return b
}

func (b *Builder) SetLineEnd(n int) *Builder {
	b.issue.LineEnd = n
	return b
}

func (b *Builder) SetColumnStart(n int) *Builder {
	b.issue.ColumnStart = n
	return b
}

func (b *Builder) SetColumnEnd(n int) *Builder {
	b.issue.ColumnEnd = n
	return b
}

func (b *Builder) SetSeverity(s Severity) *Builder {
	b.issue.Severity = s
	return b
}

func (b *Builder) SetCategory(s string) *Builder {
	b.issue.Category = strings.TrimSpace(s)
	return b
}

func (b *Builder) SetType(s string) *Builder {
	b.issue.Type = strings.TrimSpace(s)
	return b
}

func (b *Builder) SetMessage(s string) *Builder {
	b.issue.Message = strings.TrimSpace(s)
	return b
}

func (b *Builder) SetPackageName(s string) *Builder {
	b.issue.PackageName = strings.TrimSpace(s)
	return b
}

func (b *Builder) SetModuleName(s string) *Builder {
	b.issue.ModuleName = strings.TrimSpace(s)
	return b
}

func (b *Builder) SetOrigin(s string) *Builder {
	b.issue.Origin = s
	return b
}

func (b *Builder) SetFingerprint(s string) *Builder {
	b.issue.Fingerprint = s
	return b
}

// Set sets a field from its textual value.
// Numbers are parsed as decimal integers and an empty value means unknown.
// Errors are kept and returned by Build.
func (b *Builder) Set(field, value string) *Builder {
	if b.err != nil {
		return b
	}
	switch field {
	case FieldFileName:
		return b.SetFileName(value)
	case FieldLineStart:
		return b.setNumber(field, value, b.SetLineStart)
	case FieldLineEnd:
		return b.setNumber(field, value, b.SetLineEnd)
	case FieldColumnStart:
		return b.setNumber(field, value, b.SetColumnStart)
	case FieldColumnEnd:
		return b.setNumber(field, value, b.SetColumnEnd)
	case FieldSeverity:
		if strings.TrimSpace(value) == "" {
			return b.SetSeverity(severityUnset)
		}
		sev, err := ParseSeverity(value)
		if err != nil {
			b.err = fmt.Errorf("%w: %s: %w", ErrInvalidField, field, err)
			return b
		}
		return b.SetSeverity(sev)
	case FieldCategory:
		return b.SetCategory(value)
	case FieldType:
		return b.SetType(value)
	case FieldMessage:
		return b.SetMessage(value)
	case FieldPackageName:
		return b.SetPackageName(value)
	case FieldModuleName:
		return b.SetModuleName(value)
	case FieldFingerprint:
		return b.SetFingerprint(value)
	default:
		b.err = fmt.Errorf("%w: unknown field %q", ErrInvalidField, field)
		return b
	}
}

func (b *Builder) setNumber(field, value string, set func(int) *Builder) *Builder {
	value = strings.TrimSpace(value)
	if value == "" {
		return set(0)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		b.err = fmt.Errorf("%w: %s isn't a number: %q", ErrInvalidField, field, value)
		return b
	}
	return set(n)
}

// Build creates an issue from the current state.
//
// Unset fields get their defaults: empty strings, 0 for unknown numbers and
// WarningNormal for the severity. An unknown end of a range takes the start
// and a reversed range is swapped.
// Negative numbers and invalid severities are rejected with ErrInvalidField.
func (b *Builder) Build() (Issue, error) {
	if b.err != nil {
		return Issue{}, b.err
	}
	i := b.issue
	for _, f := range []struct {
		name  string
		value int
	}{
		{FieldLineStart, i.LineStart},
		{FieldLineEnd, i.LineEnd},
		{FieldColumnStart, i.ColumnStart},
		{FieldColumnEnd, i.ColumnEnd},
	} {
		if f.value < 0 {
			return Issue{}, fmt.Errorf("%w: %s must not be negative: %d", ErrInvalidField, f.name, f.value)
		}
	}
	switch {
	case i.Severity == severityUnset:
		i.Severity = WarningNormal
	case !i.Severity.Valid():
		return Issue{}, fmt.Errorf("%w: severity: %w: %d", ErrInvalidField, ErrUnknownSeverity, int(i.Severity))
	}
	i.LineStart, i.LineEnd = normalizeRange(i.LineStart, i.LineEnd)
	i.ColumnStart, i.ColumnEnd = normalizeRange(i.ColumnStart, i.ColumnEnd)
	return i, nil
}

func normalizeRange(start, end int) (int, int) {
	if end == 0 {
		return start, start
	}
	if start == 0 {
		return end, end
	}
	if end < start {
		return end, start
	}
	return start, end
}
