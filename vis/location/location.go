// Package location implements the VIS location sub-language (spec §4.B):
// an optional numeric prefix followed by a sorted, group-disjoint set of
// single-character codes.
package location

import (
	"fmt"
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
)

// Group is one of the four location group slots a non-bypass letter can
// occupy. A node may carry at most one letter per group.
type Group int

const (
	// GroupNone marks letters ('H', 'V') that bypass group-slot checks.
	GroupNone Group = iota
	GroupSide
	GroupVertical
	GroupTransverse
	GroupLongitudinal
)

func (g Group) String() string {
	switch g {
	case GroupSide:
		return "Side"
	case GroupVertical:
		return "Vertical"
	case GroupTransverse:
		return "Transverse"
	case GroupLongitudinal:
		return "Longitudinal"
	default:
		return "None"
	}
}

// Location is an immutable, canonical location string. The zero value
// represents "no location" and is distinct from any parsed value.
type Location struct {
	value string
	set   bool
}

// String returns the canonical location string, or "" if unset.
func (l Location) String() string { return l.value }

// IsZero reports whether this Location carries no value.
func (l Location) IsZero() bool { return !l.set }

// Equal reports value equality.
func (l Location) Equal(other Location) bool {
	return l.set == other.set && l.value == other.value
}

func fromCanonical(s string) Location {
	return Location{value: s, set: true}
}

// NewCanonicalLocation wraps a string already known to be a canonical
// location value, for reference-data decoding (spec §4.A): building a
// RelativeLocation's own Value field does not go through Parse, since
// the letter is the canonical form by definition.
func NewCanonicalLocation(s string) Location {
	return fromCanonical(s)
}

// Parse parses and validates a candidate location string against the
// group/alphabet rules of the given Locations set (spec §4.B algorithm).
// On success it returns the canonical Location with an empty accumulator.
// On failure it returns the zero Location and populates errs with one of
// NullOrWhiteSpace, Invalid, InvalidCode, or InvalidOrder.
func Parse(candidate string, locs *Locations, errs *errctx.Errors) (Location, bool) {
	if strings.TrimSpace(candidate) == "" {
		errs.Add(errctx.StateLocationNullOrWhiteSpace, "location is empty or whitespace")
		return Location{}, false
	}

	var (
		prevDigitIndex  = -1
		digitStartIndex = -1
		charsStartIndex = -1
		seenGroup       [4]byte // seenGroup[g-1] holds the occupying char, 0 = unseen
	)

	for i := 0; i < len(candidate); i++ {
		ch := candidate[i]

		if ch >= '0' && ch <= '9' {
			if digitStartIndex == -1 && i != 0 {
				errs.Addf(errctx.StateLocationInvalid,
					"numeric location must start before location code(s) in %q", candidate)
				return Location{}, false
			}
			if prevDigitIndex != -1 && prevDigitIndex != i-1 {
				errs.Addf(errctx.StateLocationInvalid,
					"cannot have multiple separated digits in %q", candidate)
				return Location{}, false
			}
			if digitStartIndex == -1 {
				digitStartIndex = i
			}
			prevDigitIndex = i
			continue
		}

		group, knownLetter := locs.groupOf(ch)
		if !knownLetter {
			msg := fmt.Sprintf("invalid location code %q in %q", string(ch), candidate)
			if sug := errctx.Suggest(string(ch), locs.Codes(), 3); len(sug) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(sug, ", "))
			}
			errs.Add(errctx.StateLocationInvalidCode, msg)
			return Location{}, false
		}

		if group != GroupNone {
			idx := int(group) - 1
			if seenGroup[idx] != 0 {
				errs.Addf(errctx.StateLocationInvalid,
					"multiple %s values: got both %q and %q in %q",
					group, string(seenGroup[idx]), string(ch), candidate)
				return Location{}, false
			}
			seenGroup[idx] = ch
		}

		if group != GroupNone {
			if charsStartIndex != -1 && i > 0 {
				prev := candidate[i-1]
				if !(prev >= '0' && prev <= '9') && ch < prev {
					errs.Addf(errctx.StateLocationInvalidOrder, "%q is not alphabetically sorted", candidate)
					return Location{}, false
				}
			}
		}
		if charsStartIndex == -1 {
			charsStartIndex = i
		}
	}

	return fromCanonical(candidate), true
}
