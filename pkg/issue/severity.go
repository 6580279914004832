package issue

import (
	"errors"
	"fmt"
	"strings"
)

// Severity is the normalized importance of an issue.
// Values are totally ordered: Error > WarningHigh > WarningNormal > WarningLow.
// The zero value means "not set" and is replaced by WarningNormal when an issue is built.
type Severity int

const (
	severityUnset Severity = iota
	WarningLow
	WarningNormal
	WarningHigh
	Error
)

var ErrUnknownSeverity = errors.New("unknown severity")

var severityNames = map[Severity]string{ //nolint:gochecknoglobals
	WarningLow:    "WARNING_LOW",
	WarningNormal: "WARNING_NORMAL",
	WarningHigh:   "WARNING_HIGH",
	Error:         "ERROR",
}

var severityAliases = map[string]Severity{ //nolint:gochecknoglobals
	"warning_low":    WarningLow,
	"low":            WarningLow,
	"info":           WarningLow,
	"warning_normal": WarningNormal,
	"normal":         WarningNormal,
	"medium":         WarningNormal,
	"warning":        WarningNormal,
	"warning_high":   WarningHigh,
	"high":           WarningHigh,
	"error":          Error,
}

// Severities returns every valid severity from the lowest to the highest.
func Severities() []Severity {
	return []Severity{WarningLow, WarningNormal, WarningHigh, Error}
}

func (s Severity) Valid() bool {
	return s >= WarningLow && s <= Error
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// AtLeast reports whether s is as severe as minimum or more.
func (s Severity) AtLeast(minimum Severity) bool {
	return s >= minimum
}

// ParseSeverity converts a severity name or one of its short aliases (case-insensitive).
func ParseSeverity(s string) (Severity, error) {
	if sev, ok := severityAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return sev, nil
	}
	return severityUnset, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	sev, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}
