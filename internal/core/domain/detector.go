package domain

import (
	"fmt"
	"strings"
)

// DetectorKind selects how a detector's match becomes a FeatureTuple.
type DetectorKind int

const (
	// KindGeneric detectors emit their first captured group as the label
	// and the text after the line's first colon as the value. Each match
	// counts towards label frequency.
	KindGeneric DetectorKind = iota

	// KindContact detectors emit the full match with no value.
	KindContact

	// KindBareWord detectors emit the full match with no value, unless
	// the match is also claimed by a colon, quantity or name detector.
	KindBareWord
)

// String returns the configuration spelling of the kind.
func (k DetectorKind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindContact:
		return "contact"
	case KindBareWord:
		return "bareword"
	default:
		return fmt.Sprintf("DetectorKind(%d)", int(k))
	}
}

// ParseDetectorKind parses a configuration value. Empty means generic.
func ParseDetectorKind(s string) (DetectorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "generic":
		return KindGeneric, nil
	case "contact":
		return KindContact, nil
	case "bareword", "bare-word", "bare_word":
		return KindBareWord, nil
	default:
		return KindGeneric, fmt.Errorf("detector kind %q: %w", s, ErrInvalidInput)
	}
}

// MatchScope controls where in a line a detector may match.
type MatchScope int

const (
	// ScopeLineStart requires the match to begin at the line's first character.
	ScopeLineStart MatchScope = iota

	// ScopeAnywhere accepts the first match anywhere in the line.
	ScopeAnywhere
)

// String returns the configuration spelling of the scope.
func (s MatchScope) String() string {
	switch s {
	case ScopeLineStart:
		return "start"
	case ScopeAnywhere:
		return "anywhere"
	default:
		return fmt.Sprintf("MatchScope(%d)", int(s))
	}
}

// ParseMatchScope parses a configuration value. Empty means line start.
func ParseMatchScope(s string) (MatchScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start":
		return ScopeLineStart, nil
	case "anywhere":
		return ScopeAnywhere, nil
	default:
		return ScopeLineStart, fmt.Errorf("match scope %q: %w", s, ErrInvalidInput)
	}
}
