package codebook

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// Codebooks owns one Codebook per CodebookName for a single VIS version
// (spec §3): a fixed-size array indexed by Name.
type Codebooks struct {
	Version visversion.Version
	books   [nameCount]*Codebook
}

// NewCodebooks assembles a Codebooks set from per-name standard-value
// lists. Missing names yield an empty Codebook rather than a nil entry,
// so lookups never need a nil check.
func NewCodebooks(version visversion.Version, byName map[Name][]StandardValue) *Codebooks {
	set := &Codebooks{Version: version}
	for _, name := range AllNames() {
		set.books[name] = NewCodebook(name, byName[name])
	}
	return set
}

// Get returns the Codebook for name. Panics if name is out of range: an
// invalid Name can only arise from a programming error, since NameFromPrefix
// and AllNames both only ever produce names in [0, nameCount).
func (c *Codebooks) Get(name Name) *Codebook {
	if name < 0 || name >= nameCount {
		panic(fmt.Sprintf("codebooks: name %v out of range", name))
	}
	return c.books[name]
}

// CreateTag looks up the codebook for name and validates value against it.
func (c *Codebooks) CreateTag(name Name, value string) (MetadataTag, bool) {
	return c.Get(name).CreateTag(value)
}
