package gmod

import (
	"testing"

	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(code string) GmodNode {
	return GmodNode{Version: visversion.Version3_9a, Code: code, Metadata: NodeMetadata{Type: "LEAF", Category: "PRODUCT"}}
}

func selection(code string) GmodNode {
	return GmodNode{Version: visversion.Version3_9a, Code: code, Metadata: NodeMetadata{Type: "SELECTION", Category: "PRODUCT"}}
}

func function(code string) GmodNode {
	return GmodNode{Version: visversion.Version3_9a, Code: code, Metadata: NodeMetadata{Type: "FUNCTION", Category: "FUNCTION"}}
}

func buildTestGmod(t *testing.T) *Gmod {
	t.Helper()
	nodes := []GmodNode{
		{Version: visversion.Version3_9a, Code: RootCode, Metadata: NodeMetadata{Type: "GROUP", Category: "ASSET"}},
		selection("400a"),
		leaf("411.1"),
		leaf("412.1"),
		function("413"),
		leaf("413.1"),
	}
	relations := []Relation{
		{ParentCode: RootCode, ChildCode: "400a"},
		{ParentCode: "400a", ChildCode: "411.1"},
		{ParentCode: "400a", ChildCode: "412.1"},
		{ParentCode: "400a", ChildCode: "413"},
		{ParentCode: "413", ChildCode: "413.1"},
	}
	g, errs := NewGmod(visversion.Version3_9a, nodes, relations, nil)
	require.Empty(t, errs)
	return g
}

func TestGmodChildLookup(t *testing.T) {
	g := buildTestGmod(t)
	assert.True(t, g.IsChild(RootCode, "400a"))
	assert.True(t, g.IsChild("400a", "411.1"))
	assert.False(t, g.IsChild(RootCode, "411.1"))
	assert.Equal(t, []string{"400a"}, g.Children(RootCode))
}

func TestGmodUnknownRelationReported(t *testing.T) {
	nodes := []GmodNode{{Version: visversion.Version3_9a, Code: RootCode, Metadata: NodeMetadata{Type: "GROUP"}}}
	_, errs := NewGmod(visversion.Version3_9a, nodes, []Relation{{ParentCode: RootCode, ChildCode: "missing"}}, nil)
	require.Len(t, errs, 1)
}

func TestTraverseVisitsEveryNode(t *testing.T) {
	g := buildTestGmod(t)
	var visited []string
	ok := Traverse(&visited, g.Root(), g, func(ctx *[]string, parents []*GmodNode, node *GmodNode) VisitResult {
		*ctx = append(*ctx, node.Code)
		return Continue
	}, TraversalOptions{})
	assert.True(t, ok)
	assert.ElementsMatch(t, []string{RootCode, "400a", "411.1", "412.1", "413", "413.1"}, visited)
}

func TestTraverseStopAbortsWalk(t *testing.T) {
	g := buildTestGmod(t)
	var visited []string
	ok := Traverse(&visited, g.Root(), g, func(ctx *[]string, parents []*GmodNode, node *GmodNode) VisitResult {
		*ctx = append(*ctx, node.Code)
		if node.Code == "400a" {
			return Stop
		}
		return Continue
	}, TraversalOptions{})
	assert.False(t, ok)
	assert.Equal(t, []string{RootCode, "400a"}, visited)
}

func TestComputeIndividualizableSetsSingletonLeaf(t *testing.T) {
	g := buildTestGmod(t)
	parents := []*GmodNode{g.MustNode(RootCode), g.MustNode("400a")}
	target := g.MustNode("411.1")

	sets, err := ComputeIndividualizableSets(parents, target)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, 2, sets[0].Start)
	assert.Equal(t, 2, sets[0].End)
}

func TestComputeIndividualizableSetsGroupsChainedRun(t *testing.T) {
	g := buildTestGmod(t)
	locs, err := location.NewLocations(g.Version, nil)
	require.NoError(t, err)

	a, ok := location.Parse("11", locs, errctx.New())
	require.True(t, ok)

	mid := g.MustNode("413").WithLocation(a)
	target := g.MustNode("413.1").WithLocation(a)
	parents := []*GmodNode{g.MustNode(RootCode), g.MustNode("400a"), &mid}

	sets, setErr := ComputeIndividualizableSets(parents, &target)
	require.NoError(t, setErr)
	require.Len(t, sets, 1)
	assert.Equal(t, 2, sets[0].Start)
	assert.Equal(t, 3, sets[0].End)
}

func TestComputeIndividualizableSetsRejectsConflictingLocations(t *testing.T) {
	g := buildTestGmod(t)
	locs, err := location.NewLocations(g.Version, nil)
	require.NoError(t, err)

	a, ok := location.Parse("11", locs, errctx.New())
	require.True(t, ok)
	b, ok := location.Parse("12", locs, errctx.New())
	require.True(t, ok)

	mid := g.MustNode("413").WithLocation(a)
	target := g.MustNode("413.1").WithLocation(b)
	parents := []*GmodNode{g.MustNode(RootCode), g.MustNode("400a"), &mid}

	_, setErr := ComputeIndividualizableSets(parents, &target)
	assert.Error(t, setErr)
}
