// Package rules provides the rule contract, the diagnostic model and the
// rule registry of the map linter.
package rules

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level is the severity of a diagnostic.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver per json.Unmarshaler interface
type Level int

const (
	// LevelWarning marks a stylistic or likely-but-unconfirmed issue.
	LevelWarning Level = iota
	// LevelError marks a confirmed policy or consistency violation.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Level) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseLevel(str)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level string into a Level value.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelError, fmt.Errorf("unknown level: %q", s)
	}
}

// IsAtLeast returns true if l is at least as severe as threshold.
func (l Level) IsAtLeast(threshold Level) bool {
	return l >= threshold
}
