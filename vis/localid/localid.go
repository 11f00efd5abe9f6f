// Package localid implements the LocalId builder, printer, and parser
// (spec §4.H, §4.I): the dnv-v2 identifier that names one signal or
// functional item aboard a vessel by GMOD path and metadata tags.
package localid

import (
	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmodpath"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// NamingRule is the fixed first path segment of every dnv-v2 LocalId.
const NamingRule = "dnv-v2"

// LocalId is an immutable, valid identifier bundle (spec §3): a VIS
// version, a primary path, an optional secondary path, and at least one
// metadata tag across the eight content codebooks.
type LocalId struct {
	Version       visversion.Version
	PrimaryItem   gmodpath.GmodPath
	SecondaryItem *gmodpath.GmodPath
	VerboseMode   bool
	tags          map[codebook.Name]codebook.MetadataTag
}

// Tag returns the metadata tag for name, if one was set.
func (l LocalId) Tag(name codebook.Name) (codebook.MetadataTag, bool) {
	t, ok := l.tags[name]
	return t, ok
}

// Tags returns every set metadata tag, in canonical codebook order
// (spec §4.H: Quantity, Content, Calculation, State, Command, Type,
// Position, Detail).
func (l LocalId) Tags() []codebook.MetadataTag {
	out := make([]codebook.MetadataTag, 0, len(l.tags))
	for _, name := range codebook.ContentNames() {
		if t, ok := l.tags[name]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Equal reports deep equality between two LocalId values.
func (l LocalId) Equal(other LocalId) bool {
	if l.Version != other.Version || l.VerboseMode != other.VerboseMode {
		return false
	}
	if !l.PrimaryItem.Equal(other.PrimaryItem) {
		return false
	}
	if (l.SecondaryItem == nil) != (other.SecondaryItem == nil) {
		return false
	}
	if l.SecondaryItem != nil && !l.SecondaryItem.Equal(*other.SecondaryItem) {
		return false
	}
	if len(l.tags) != len(other.tags) {
		return false
	}
	for name, tag := range l.tags {
		ot, ok := other.tags[name]
		if !ok || ot != tag {
			return false
		}
	}
	return true
}
