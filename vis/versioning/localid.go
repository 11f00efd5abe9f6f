package versioning

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/localid"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// ConvertLocalId converts a LocalId to targetVersion by converting its
// primary and (if present) secondary GmodPath and carrying every
// metadata tag across unchanged (spec §4.J).
func (c *Converter) ConvertLocalId(source localid.LocalId, targetVersion visversion.Version) (localid.LocalId, error) {
	primary, err := c.ConvertPath(source.Version, source.PrimaryItem, targetVersion)
	if err != nil {
		return localid.LocalId{}, fmt.Errorf("versioning: converting primary item: %w", err)
	}

	builder := localid.NewBuilder().
		WithVisVersion(targetVersion).
		WithPrimaryItem(primary).
		WithVerboseMode(source.VerboseMode)

	if source.SecondaryItem != nil {
		secondary, err := c.ConvertPath(source.Version, *source.SecondaryItem, targetVersion)
		if err != nil {
			return localid.LocalId{}, fmt.Errorf("versioning: converting secondary item: %w", err)
		}
		builder = builder.WithSecondaryItem(secondary)
	}

	for _, tag := range source.Tags() {
		carried := codebook.NewMetadataTag(tag.Name, tag.Value, tag.IsCustom)
		var ok bool
		builder, ok = builder.WithMetadataTag(carried)
		if !ok {
			return localid.LocalId{}, fmt.Errorf("versioning: tag for codebook %q rejected while converting", tag.Name)
		}
	}

	out, ok := builder.Build()
	if !ok {
		return localid.LocalId{}, fmt.Errorf("versioning: converted local id failed validation")
	}
	return out, nil
}
