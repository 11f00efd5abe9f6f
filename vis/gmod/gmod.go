package gmod

import (
	"fmt"
	"sort"

	"github.com/dnv-opensource/vista-sdk-go/vis/internal/invariant"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// Relation is one parent/child edge of the raw GMOD relation list, as
// decoded from reference data (spec §4.A).
type Relation struct {
	ParentCode string
	ChildCode  string
}

// Assignment is one product-type or product-selection edge: a parent
// node assigning a specific child as its product type/selection rather
// than a plain structural child (spec §3 NormalAssignmentNames).
type Assignment struct {
	ParentCode string
	ChildCode  string
}

// Gmod is the complete GMOD tree for one VIS version (spec §3, §4.D):
// owning storage for every node prototype plus the adjacency indexes
// needed for O(1) parent/child lookup. A Gmod is built once by the
// loader and is safe for unsynchronized concurrent reads thereafter.
type Gmod struct {
	Version visversion.Version

	nodes    map[string]*GmodNode
	children map[string][]string
	parents  map[string][]string
	childSet map[string]map[string]struct{}

	productType      map[string]string
	productSelection map[string]string

	root *GmodNode
}

// NewGmod assembles a Gmod from decoded node prototypes and relations.
// Relations naming an unknown code are reported, not fatal: the caller
// (the loader) decides whether to warn-and-continue or to fail,
// matching spec §4.A's "a node or relation referencing an unknown code
// is reported to the caller rather than silently dropped."
func NewGmod(version visversion.Version, nodes []GmodNode, relations []Relation, assignments []Assignment) (*Gmod, []error) {
	g := &Gmod{
		Version:          version,
		nodes:            make(map[string]*GmodNode, len(nodes)),
		children:         make(map[string][]string),
		parents:          make(map[string][]string),
		childSet:         make(map[string]map[string]struct{}),
		productType:      make(map[string]string),
		productSelection: make(map[string]string),
	}

	var errs []error

	for i := range nodes {
		n := nodes[i]
		if _, dup := g.nodes[n.Code]; dup {
			errs = append(errs, fmt.Errorf("gmod: duplicate node code %q", n.Code))
			continue
		}
		g.nodes[n.Code] = &n
	}

	for _, rel := range relations {
		if _, ok := g.nodes[rel.ParentCode]; !ok {
			errs = append(errs, fmt.Errorf("gmod: relation references unknown parent %q", rel.ParentCode))
			continue
		}
		if _, ok := g.nodes[rel.ChildCode]; !ok {
			errs = append(errs, fmt.Errorf("gmod: relation references unknown child %q", rel.ChildCode))
			continue
		}
		if g.childSet[rel.ParentCode] == nil {
			g.childSet[rel.ParentCode] = make(map[string]struct{})
		}
		if _, dup := g.childSet[rel.ParentCode][rel.ChildCode]; dup {
			continue
		}
		g.childSet[rel.ParentCode][rel.ChildCode] = struct{}{}
		g.children[rel.ParentCode] = append(g.children[rel.ParentCode], rel.ChildCode)
		g.parents[rel.ChildCode] = append(g.parents[rel.ChildCode], rel.ParentCode)
	}

	for code := range g.children {
		sort.Strings(g.children[code])
	}

	for _, a := range assignments {
		if _, ok := g.nodes[a.ParentCode]; !ok {
			errs = append(errs, fmt.Errorf("gmod: assignment references unknown parent %q", a.ParentCode))
			continue
		}
		if _, ok := g.nodes[a.ChildCode]; !ok {
			errs = append(errs, fmt.Errorf("gmod: assignment references unknown child %q", a.ChildCode))
			continue
		}
		child := g.nodes[a.ChildCode]
		if IsProductSelectionType(child) {
			g.productSelection[a.ParentCode] = a.ChildCode
		} else {
			g.productType[a.ParentCode] = a.ChildCode
		}
	}

	if root, ok := g.nodes[RootCode]; ok {
		g.root = root
	} else {
		errs = append(errs, fmt.Errorf("gmod: missing root node %q", RootCode))
	}

	return g, errs
}

// IsProductSelectionType is a loader-time classifier distinguishing a
// product-selection assignment target from a product-type one, based on
// the child node's own declared type.
func IsProductSelectionType(node *GmodNode) bool {
	return node.Metadata.Type == "SELECTION"
}

// Root returns the GMOD's designated root node ("VE").
func (g *Gmod) Root() *GmodNode {
	invariant.NotNil(g.root, "gmod root")
	return g.root
}

// Node looks up a node prototype by code (without location).
func (g *Gmod) Node(code string) (*GmodNode, bool) {
	n, ok := g.nodes[code]
	return n, ok
}

// Codes returns every known node code, used to build "did you mean"
// suggestions for unknown-code errors in the path parsers.
func (g *Gmod) Codes() []string {
	out := make([]string, 0, len(g.nodes))
	for code := range g.nodes {
		out = append(out, code)
	}
	return out
}

// MustNode looks up a node prototype, panicking if code is unknown:
// for call sites that have already validated the code exists.
func (g *Gmod) MustNode(code string) *GmodNode {
	n, ok := g.nodes[code]
	invariant.Precondition(ok, "gmod: unknown node code %q", code)
	return n
}

// Children returns the codes of node's direct children, in stable
// (sorted) order.
func (g *Gmod) Children(code string) []string {
	return g.children[code]
}

// Parents returns the codes of node's direct parents. A GMOD is a DAG,
// so a node may have more than one.
func (g *Gmod) Parents(code string) []string {
	return g.parents[code]
}

// IsChild reports whether childCode is a direct child of parentCode, in
// O(1).
func (g *Gmod) IsChild(parentCode, childCode string) bool {
	set, ok := g.childSet[parentCode]
	if !ok {
		return false
	}
	_, ok = set[childCode]
	return ok
}

func (g *Gmod) productTypeChild(parentCode string) *GmodNode {
	code, ok := g.productType[parentCode]
	if !ok {
		return nil
	}
	return g.nodes[code]
}

func (g *Gmod) productSelectionChild(parentCode string) *GmodNode {
	code, ok := g.productSelection[parentCode]
	if !ok {
		return nil
	}
	return g.nodes[code]
}

// PathExistsBetween reports whether to is reachable from any node in
// from by following child edges, returning the chain of intermediate
// codes strictly between the first candidate in from that reaches it
// and toCode itself (toCode is not included) (spec §4.J: bounded path
// search used when reconstructing a path across a GMOD version change).
func (g *Gmod) PathExistsBetween(from []*GmodNode, toCode string) (remaining []string, ok bool) {
	for _, start := range from {
		if start.Code == toCode {
			return nil, true
		}
		if chain, found := g.searchDown(start.Code, toCode, nil, make(map[string]bool)); found {
			return chain, true
		}
	}
	return nil, false
}

func (g *Gmod) searchDown(fromCode, toCode string, path []string, visited map[string]bool) ([]string, bool) {
	if visited[fromCode] {
		return nil, false
	}
	visited[fromCode] = true

	for _, childCode := range g.children[fromCode] {
		if childCode == toCode {
			return append([]string{}, path...), true
		}
		if chain, found := g.searchDown(childCode, toCode, append(path, childCode), visited); found {
			return chain, true
		}
	}
	return nil, false
}
