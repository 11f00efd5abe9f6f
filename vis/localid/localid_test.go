package localid

import (
	"testing"

	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmodpath"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFixture(t *testing.T) (*gmod.Gmod, *location.Locations, *codebook.Codebooks) {
	t.Helper()

	name := "generator"
	nodes := []gmod.GmodNode{
		{Version: visversion.Version3_9a, Code: gmod.RootCode, Metadata: gmod.NodeMetadata{Type: "GROUP", Category: "ASSET"}},
		{Version: visversion.Version3_9a, Code: "400a", Metadata: gmod.NodeMetadata{Type: "SELECTION", Category: "PRODUCT"}},
		{Version: visversion.Version3_9a, Code: "411.1", Metadata: gmod.NodeMetadata{Type: "LEAF", Category: "FUNCTION", Name: name}},
	}
	relations := []gmod.Relation{
		{ParentCode: gmod.RootCode, ChildCode: "400a"},
		{ParentCode: "400a", ChildCode: "411.1"},
	}
	g, errs := gmod.NewGmod(visversion.Version3_9a, nodes, relations, nil)
	require.Empty(t, errs)

	locs, err := location.NewLocations(visversion.Version3_9a, nil)
	require.NoError(t, err)

	books := codebook.NewCodebooks(visversion.Version3_9a, map[codebook.Name][]codebook.StandardValue{
		codebook.Quantity: {{Value: "temperature"}},
	})

	return g, locs, books
}

func TestBuilderRoundTrip(t *testing.T) {
	g, locs, books := buildFixture(t)

	primary, errs, ok := gmodpath.Parse("411.1-1", g, locs)
	require.True(t, ok, errs.Error())

	tag, ok := books.CreateTag(codebook.Quantity, "temperature")
	require.True(t, ok)

	b := NewBuilder().
		WithVisVersion(visversion.Version3_9a).
		WithPrimaryItem(primary)
	b, ok = b.WithMetadataTag(tag)
	require.True(t, ok)

	id, ok := b.Build()
	require.True(t, ok)

	str := id.String()
	assert.Equal(t, "/dnv-v2/vis-3-9a/411.1-1/meta/qty-temperature", str)

	parsed, perrs, pok := Parse(str, g, locs, books)
	require.True(t, pok, perrs.Error())
	assert.True(t, parsed.Equal(id))
}

func TestBuildFailsWithoutTag(t *testing.T) {
	g, locs, _ := buildFixture(t)
	primary, errs, ok := gmodpath.Parse("411.1-1", g, locs)
	require.True(t, ok, errs.Error())

	b := NewBuilder().WithVisVersion(visversion.Version3_9a).WithPrimaryItem(primary)
	_, ok = b.Build()
	assert.False(t, ok)
}

func TestParseRejectsUnknownNamingRule(t *testing.T) {
	g, locs, books := buildFixture(t)
	_, errs, ok := Parse("/dnv-v1/vis-3-9a/411.1-1/meta/qty-temperature", g, locs, books)
	assert.False(t, ok)
	assert.True(t, errs.HasState("NamingRule"))
}

func TestParseUnknownPrefixSuggestsClosestMatch(t *testing.T) {
	g, locs, books := buildFixture(t)
	_, errs, ok := Parse("/dnv-v2/vis-3-9a/411.1-1/meta/qy-temperature", g, locs, books)
	assert.False(t, ok)
	assert.Contains(t, errs.Error(), "qty")
}

func TestStringVerboseMode(t *testing.T) {
	g, locs, books := buildFixture(t)
	primary, errs, ok := gmodpath.Parse("411.1-1", g, locs)
	require.True(t, ok, errs.Error())

	tag, ok := books.CreateTag(codebook.Quantity, "temperature")
	require.True(t, ok)

	b := NewBuilder().WithVisVersion(visversion.Version3_9a).WithPrimaryItem(primary).WithVerboseMode(true)
	b, ok = b.WithMetadataTag(tag)
	require.True(t, ok)

	id, ok := b.Build()
	require.True(t, ok)

	assert.Equal(t, "/dnv-v2/vis-3-9a/411.1-1/~generator.1/meta/qty-temperature", id.String())
}
