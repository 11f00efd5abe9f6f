package universalid

import (
	"testing"

	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmodpath"
	"github.com/dnv-opensource/vista-sdk-go/vis/localid"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFixture(t *testing.T) (*gmod.Gmod, *location.Locations, *codebook.Codebooks) {
	t.Helper()

	nodes := []gmod.GmodNode{
		{Version: visversion.Version3_9a, Code: gmod.RootCode, Metadata: gmod.NodeMetadata{Type: "GROUP", Category: "ASSET"}},
		{Version: visversion.Version3_9a, Code: "400a", Metadata: gmod.NodeMetadata{Type: "SELECTION", Category: "PRODUCT"}},
		{Version: visversion.Version3_9a, Code: "411.1", Metadata: gmod.NodeMetadata{Type: "LEAF", Category: "FUNCTION", Name: "generator"}},
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

func TestImoNumberValidAndInvalid(t *testing.T) {
	_, err := NewImoNumber(9074729)
	assert.NoError(t, err)

	_, err = NewImoNumber(9074721)
	assert.Error(t, err)

	imo, err := ParseImoNumber("IMO9074729")
	require.NoError(t, err)
	assert.Equal(t, "IMO9074729", imo.String())
}

func TestShipIDTaggedUnion(t *testing.T) {
	imo, err := NewImoNumber(9074729)
	require.NoError(t, err)

	s := NewShipIDFromImo(imo)
	got, ok := s.ImoNumber()
	assert.True(t, ok)
	assert.Equal(t, imo, got)
	assert.Equal(t, "IMO9074729", s.String())

	other := NewShipIDFromOther("some-yard-hull-42")
	id, ok := other.OtherID()
	assert.True(t, ok)
	assert.Equal(t, "some-yard-hull-42", id)
	assert.Equal(t, "some-yard-hull-42", other.String())

	assert.True(t, ShipID{}.IsZero())
}

func TestParseShipIDPrefersImo(t *testing.T) {
	s := ParseShipID("IMO9074729")
	_, ok := s.ImoNumber()
	assert.True(t, ok)

	s = ParseShipID("IMO0000000")
	_, ok = s.OtherID()
	assert.True(t, ok)
}

func TestBuilderRequiresShipAndLocal(t *testing.T) {
	g, locs, books := buildFixture(t)
	primary, errs, ok := gmodpath.Parse("411.1-1", g, locs)
	require.True(t, ok, errs.Error())

	tag, ok := books.CreateTag(codebook.Quantity, "temperature")
	require.True(t, ok)

	lb, ok := localid.NewBuilder().
		WithVisVersion(visversion.Version3_9a).
		WithPrimaryItem(primary).
		WithMetadataTag(tag)
	require.True(t, ok)

	_, ok = NewBuilder().WithLocalIdBuilder(lb).Build()
	assert.False(t, ok, "missing ship id should fail build")

	imo, err := NewImoNumber(9074729)
	require.NoError(t, err)

	_, ok = NewBuilder().WithImoNumber(imo).Build()
	assert.False(t, ok, "missing local id builder should fail build")

	uid, ok := NewBuilder().WithImoNumber(imo).WithLocalIdBuilder(lb).Build()
	require.True(t, ok)
	assert.Equal(t, "data.dnv.com/IMO9074729/dnv-v2/vis-3-9a/411.1-1/meta/qty-temperature", uid.String())
}

func TestUniversalIdRoundTrip(t *testing.T) {
	g, locs, books := buildFixture(t)
	primary, errs, ok := gmodpath.Parse("411.1-1", g, locs)
	require.True(t, ok, errs.Error())

	tag, ok := books.CreateTag(codebook.Quantity, "temperature")
	require.True(t, ok)

	lb, ok := localid.NewBuilder().
		WithVisVersion(visversion.Version3_9a).
		WithPrimaryItem(primary).
		WithMetadataTag(tag)
	require.True(t, ok)

	imo, err := NewImoNumber(9074729)
	require.NoError(t, err)

	uid, ok := NewBuilder().WithImoNumber(imo).WithLocalIdBuilder(lb).Build()
	require.True(t, ok)

	str := uid.String()
	parsed, perrs, pok := Parse(str, g, locs, books)
	require.True(t, pok, perrs.Error())

	gotImo, ok := parsed.ShipID.ImoNumber()
	require.True(t, ok)
	assert.Equal(t, imo, gotImo)
	assert.True(t, parsed.LocalId.Equal(uid.LocalId))
}

func TestUniversalIdParseRejectsBadPrefix(t *testing.T) {
	g, locs, books := buildFixture(t)
	_, errs, ok := Parse("other.example.com/IMO9074729/dnv-v2/vis-3-9a/411.1-1/meta/qty-temperature", g, locs, books)
	assert.False(t, ok)
	assert.True(t, errs.HasErrors())
}

func TestUniversalIdParseOtherShipID(t *testing.T) {
	g, locs, books := buildFixture(t)
	parsed, errs, ok := Parse("data.dnv.com/some-yard-hull-42/dnv-v2/vis-3-9a/411.1-1/meta/qty-temperature", g, locs, books)
	require.True(t, ok, errs.Error())

	id, ok := parsed.ShipID.OtherID()
	require.True(t, ok)
	assert.Equal(t, "some-yard-hull-42", id)
}
