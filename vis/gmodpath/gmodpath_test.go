package gmodpath

import (
	"testing"

	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFixtureGmod(t *testing.T) (*gmod.Gmod, *location.Locations) {
	t.Helper()
	nodes := []gmod.GmodNode{
		{Version: visversion.Version3_9a, Code: gmod.RootCode, Metadata: gmod.NodeMetadata{Type: "GROUP", Category: "ASSET"}},
		{Version: visversion.Version3_9a, Code: "400a", Metadata: gmod.NodeMetadata{Type: "SELECTION", Category: "PRODUCT"}},
		{Version: visversion.Version3_9a, Code: "411.1", Metadata: gmod.NodeMetadata{Type: "LEAF", Category: "FUNCTION", Name: "generator"}},
		{Version: visversion.Version3_9a, Code: "412.1", Metadata: gmod.NodeMetadata{Type: "LEAF", Category: "FUNCTION", Name: "engine"}},
	}
	relations := []gmod.Relation{
		{ParentCode: gmod.RootCode, ChildCode: "400a"},
		{ParentCode: "400a", ChildCode: "411.1"},
		{ParentCode: "400a", ChildCode: "412.1"},
	}
	g, errs := gmod.NewGmod(visversion.Version3_9a, nodes, relations, nil)
	require.Empty(t, errs)

	locs, err := location.NewLocations(visversion.Version3_9a, nil)
	require.NoError(t, err)

	return g, locs
}

func TestParseShortPathRoundTrip(t *testing.T) {
	g, locs := buildFixtureGmod(t)

	path, errs, ok := Parse("411.1-1", g, locs)
	require.True(t, ok, errs.Error())
	assert.Equal(t, "VE/400a/411.1-1", path.ToFullPathString())
	assert.Equal(t, "411.1-1", path.String())
}

func TestParseShortPathUnknownCode(t *testing.T) {
	g, locs := buildFixtureGmod(t)
	_, errs, ok := Parse("999.9", g, locs)
	assert.False(t, ok)
	assert.True(t, errs.HasErrors())
}

func TestParseShortPathUnknownCodeSuggestsClosestMatch(t *testing.T) {
	g, locs := buildFixtureGmod(t)
	_, errs, ok := Parse("411", g, locs)
	assert.False(t, ok)
	assert.Contains(t, errs.Error(), "411.1")
}

func TestParseFullPath(t *testing.T) {
	g, locs := buildFixtureGmod(t)
	path, errs, ok := ParseFullPath("VE/400a/412.1-2", g, locs)
	require.True(t, ok, errs.Error())
	assert.Equal(t, 3, path.Length())
	assert.Equal(t, "412.1", path.Target().Code)
	assert.Equal(t, "2", path.Target().Location.String())
}

func TestParseFullPathTargetMetadataMatchesFixture(t *testing.T) {
	g, locs := buildFixtureGmod(t)
	path, errs, ok := ParseFullPath("VE/400a/412.1-2", g, locs)
	require.True(t, ok, errs.Error())

	loc, locOk := location.Parse("2", locs, errctx.New())
	require.True(t, locOk)

	want := gmod.GmodNode{
		Version:  visversion.Version3_9a,
		Code:     "412.1",
		Location: loc,
		Metadata: gmod.NodeMetadata{Type: "LEAF", Category: "FUNCTION", Name: "engine"},
	}

	locCmp := cmp.Comparer(func(a, b location.Location) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, *path.Target(), locCmp); diff != "" {
		t.Fatalf("target node mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFullPathRejectsInvalidSequence(t *testing.T) {
	g, locs := buildFixtureGmod(t)
	_, errs, ok := ParseFullPath("VE/411.1", g, locs)
	assert.False(t, ok)
	assert.True(t, errs.HasErrors())
}

func TestGmodPathIsValid(t *testing.T) {
	g, _ := buildFixtureGmod(t)
	root := g.Root()
	parent := g.MustNode("400a")
	target := g.MustNode("411.1")

	assert.True(t, IsValid(g, target, []*gmod.GmodNode{root, parent}))
	assert.False(t, IsValid(g, target, []*gmod.GmodNode{parent}))
}

func TestIndividualizableSetsSingletonLeaf(t *testing.T) {
	g, locs := buildFixtureGmod(t)
	path, errs, ok := Parse("411.1-1", g, locs)
	require.True(t, ok, errs.Error())

	sets, err := path.IndividualizableSets()
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "1", sets[0].Location.String())
}

func TestWithoutLocationsClearsEveryNode(t *testing.T) {
	g, locs := buildFixtureGmod(t)
	path, errs, ok := Parse("411.1-1", g, locs)
	require.True(t, ok, errs.Error())

	cleared := path.WithoutLocations()
	for i := 0; i < cleared.Length(); i++ {
		assert.True(t, cleared.Node(i).Location.IsZero())
	}
}
