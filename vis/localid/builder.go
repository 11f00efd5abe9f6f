package localid

import (
	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmodpath"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// Builder is the immutable fluent LocalId builder (spec §4.H). Every
// With/Without method returns a new Builder; the zero value is ready to
// use.
type Builder struct {
	version       visversion.Version
	hasVersion    bool
	primaryItem   *gmodpath.GmodPath
	secondaryItem *gmodpath.GmodPath
	verbose       bool
	tags          map[codebook.Name]codebook.MetadataTag
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder {
	return Builder{}
}

func (b Builder) clone() Builder {
	out := b
	if b.tags != nil {
		out.tags = make(map[codebook.Name]codebook.MetadataTag, len(b.tags))
		for k, v := range b.tags {
			out.tags[k] = v
		}
	}
	return out
}

// WithVisVersion sets the VIS version.
func (b Builder) WithVisVersion(v visversion.Version) Builder {
	out := b.clone()
	out.version = v
	out.hasVersion = true
	return out
}

// WithoutVisVersion clears the VIS version.
func (b Builder) WithoutVisVersion() Builder {
	out := b.clone()
	out.version = visversion.VersionUnknown
	out.hasVersion = false
	return out
}

// WithPrimaryItem sets the primary GmodPath.
func (b Builder) WithPrimaryItem(path gmodpath.GmodPath) Builder {
	out := b.clone()
	out.primaryItem = &path
	return out
}

// WithoutPrimaryItem clears the primary GmodPath.
func (b Builder) WithoutPrimaryItem() Builder {
	out := b.clone()
	out.primaryItem = nil
	return out
}

// WithSecondaryItem sets the secondary GmodPath.
func (b Builder) WithSecondaryItem(path gmodpath.GmodPath) Builder {
	out := b.clone()
	out.secondaryItem = &path
	return out
}

// WithoutSecondaryItem clears the secondary GmodPath.
func (b Builder) WithoutSecondaryItem() Builder {
	out := b.clone()
	out.secondaryItem = nil
	return out
}

// WithVerboseMode sets the verbose-mode flag.
func (b Builder) WithVerboseMode(verbose bool) Builder {
	out := b.clone()
	out.verbose = verbose
	return out
}

// WithMetadataTag sets tag in the slot derived from its codebook. Fails
// if tag's codebook is not one of the eight content codebooks eligible
// for a LocalId (spec §4.H).
func (b Builder) WithMetadataTag(tag codebook.MetadataTag) (Builder, bool) {
	if !codebook.IsContentCodebook(tag.Name) {
		return b, false
	}
	out := b.clone()
	if out.tags == nil {
		out.tags = make(map[codebook.Name]codebook.MetadataTag, 1)
	}
	out.tags[tag.Name] = tag
	return out, true
}

// WithoutMetadataTag clears the tag slot for name, if any.
func (b Builder) WithoutMetadataTag(name codebook.Name) Builder {
	out := b.clone()
	delete(out.tags, name)
	return out
}

// Build assembles the LocalId iff a VIS version, a primary item, and at
// least one tag are set (spec §4.H).
func (b Builder) Build() (LocalId, bool) {
	if !b.hasVersion || b.primaryItem == nil || len(b.tags) == 0 {
		return LocalId{}, false
	}
	return LocalId{
		Version:       b.version,
		PrimaryItem:   *b.primaryItem,
		SecondaryItem: b.secondaryItem,
		VerboseMode:   b.verbose,
		tags:          b.tags,
	}, true
}
