package location

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// RelativeLocation is one entry of the Locations reference data (spec §3):
// a single-character code, its display name, the canonical Location value
// it prints as, an optional definition, and the group it belongs to.
type RelativeLocation struct {
	Code       byte
	Name       string
	Value      Location
	Definition *string
	Group      Group
}

// Locations owns the full set of valid location letters for one VIS
// version: the RelativeLocation list, the char->group map, and a
// per-group index.
type Locations struct {
	Version  visversion.Version
	relative []RelativeLocation
	groups   map[byte]Group
	byGroup  map[Group][]RelativeLocation
}

// NewLocations builds a Locations set from the loaded RelativeLocation
// records. Two entries sharing a code is a loader-level data error, not
// a caller mistake, and is reported rather than panicking.
func NewLocations(version visversion.Version, relative []RelativeLocation) (*Locations, error) {
	locs := &Locations{
		Version:  version,
		relative: relative,
		groups:   make(map[byte]Group, len(relative)),
		byGroup:  make(map[Group][]RelativeLocation),
	}
	for _, rl := range relative {
		if _, dup := locs.groups[rl.Code]; dup {
			return nil, fmt.Errorf("location: duplicate location code %q", string(rl.Code))
		}
		locs.groups[rl.Code] = rl.Group
		locs.byGroup[rl.Group] = append(locs.byGroup[rl.Group], rl)
	}
	return locs, nil
}

// groupOf reports the group a known letter belongs to, and whether the
// letter is known at all ('H'/'V' are known but report GroupNone).
func (l *Locations) groupOf(ch byte) (Group, bool) {
	g, ok := l.groups[ch]
	return g, ok
}

// IsValidCode reports whether ch is a recognized location letter.
func (l *Locations) IsValidCode(ch byte) bool {
	_, ok := l.groups[ch]
	return ok
}

// RelativeLocations returns the full reference list, in load order.
func (l *Locations) RelativeLocations() []RelativeLocation {
	return l.relative
}

// Codes returns every known single-character code, used to build "did you
// mean" suggestions for InvalidCode errors.
func (l *Locations) Codes() []string {
	out := make([]string, 0, len(l.relative))
	for _, rl := range l.relative {
		out = append(out, string(rl.Code))
	}
	return out
}

// ForGroup returns the RelativeLocation entries belonging to one group.
func (l *Locations) ForGroup(g Group) []RelativeLocation {
	return l.byGroup[g]
}
