package location

import (
	"fmt"
	"sort"
)

// Builder is an immutable fluent builder for Location values. Each
// with-/without- method returns a new Builder; none mutate the receiver
// (spec §4.B, §9 "Immutability and builders").
type Builder struct {
	locs   *Locations
	number *int
	slots  [4]byte // indexed by Group-1; 0 means unset
	hv     []byte  // H/V bypass letters carried verbatim, at most one of each
}

// NewBuilder creates an empty Builder bound to locs, the set of known
// letters for one VIS version.
func NewBuilder(locs *Locations) Builder {
	return Builder{locs: locs}
}

// WithNumber sets the numeric prefix. Panics if number < 1: this is a
// caller contract violation, not a data error (spec §9).
func (b Builder) WithNumber(number int) Builder {
	if number < 1 {
		panic(fmt.Sprintf("location: number must be positive, got %d", number))
	}
	result := b
	n := number
	result.number = &n
	return result
}

// WithoutNumber clears the numeric prefix.
func (b Builder) WithoutNumber() Builder {
	result := b
	result.number = nil
	return result
}

func (b Builder) withSlot(group Group, ch byte) Builder {
	result := b
	result.slots[group-1] = ch
	return result
}

func (b Builder) withoutSlot(group Group) Builder {
	result := b
	result.slots[group-1] = 0
	return result
}

// WithSide sets the Side-group letter.
func (b Builder) WithSide(ch byte) Builder { return b.withCodeInGroup(ch, GroupSide) }

// WithVertical sets the Vertical-group letter.
func (b Builder) WithVertical(ch byte) Builder { return b.withCodeInGroup(ch, GroupVertical) }

// WithTransverse sets the Transverse-group letter.
func (b Builder) WithTransverse(ch byte) Builder { return b.withCodeInGroup(ch, GroupTransverse) }

// WithLongitudinal sets the Longitudinal-group letter.
func (b Builder) WithLongitudinal(ch byte) Builder {
	return b.withCodeInGroup(ch, GroupLongitudinal)
}

// WithoutSide, WithoutVertical, WithoutTransverse, WithoutLongitudinal
// clear the corresponding slot.
func (b Builder) WithoutSide() Builder         { return b.withoutSlot(GroupSide) }
func (b Builder) WithoutVertical() Builder     { return b.withoutSlot(GroupVertical) }
func (b Builder) WithoutTransverse() Builder   { return b.withoutSlot(GroupTransverse) }
func (b Builder) WithoutLongitudinal() Builder { return b.withoutSlot(GroupLongitudinal) }

func (b Builder) withCodeInGroup(ch byte, want Group) Builder {
	group, ok := b.locs.groupOf(ch)
	if !ok || group != want {
		panic(fmt.Sprintf("location: %q is not a valid %s value", string(ch), want))
	}
	return b.withSlot(want, ch)
}

// WithCode routes ch to the correct slot by looking up its group, or
// appends it to the H/V bypass set if it belongs to no group.
func (b Builder) WithCode(ch byte) Builder {
	group, ok := b.locs.groupOf(ch)
	if !ok {
		panic(fmt.Sprintf("location: %q is an invalid location value", string(ch)))
	}
	if group == GroupNone {
		result := b
		for _, existing := range result.hv {
			if existing == ch {
				return result
			}
		}
		result.hv = append(append([]byte{}, result.hv...), ch)
		return result
	}
	return b.withSlot(group, ch)
}

// WithLocation seeds the builder from an already-parsed Location string,
// distributing its number and letters across slots.
func (b Builder) WithLocation(loc Location) Builder {
	if loc.IsZero() {
		panic("location: cannot build from an empty Location")
	}
	result := b
	s := loc.value
	numEnd := 0
	for numEnd < len(s) && s[numEnd] >= '0' && s[numEnd] <= '9' {
		numEnd++
	}
	if numEnd > 0 {
		n := 0
		for _, c := range s[:numEnd] {
			n = n*10 + int(c-'0')
		}
		result = result.WithNumber(n)
	}
	for i := numEnd; i < len(s); i++ {
		result = result.WithCode(s[i])
	}
	return result
}

// Build prints the canonical form: an optional leading number followed by
// all letters, the set letters and any H/V bypass letters, sorted together.
func (b Builder) Build() (Location, bool) {
	var letters []byte
	for _, ch := range b.slots {
		if ch != 0 {
			letters = append(letters, ch)
		}
	}
	letters = append(letters, b.hv...)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	if b.number == nil && len(letters) == 0 {
		return Location{}, false
	}

	out := make([]byte, 0, 8)
	if b.number != nil {
		out = append(out, []byte(fmt.Sprintf("%d", *b.number))...)
	}
	out = append(out, letters...)
	return fromCanonical(string(out)), true
}
