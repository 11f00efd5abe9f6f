// Package gmodpath implements GmodPath and its short- and full-form
// parsers (spec §4.E, §4.F, §4.G): an ordered, rooted sequence of GMOD
// nodes with per-node locations, validated against the child relation
// and the individualizable-set rules.
package gmodpath

import (
	"fmt"
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// GmodPath is an immutable root-to-target chain through one Gmod.
type GmodPath struct {
	Version visversion.Version
	gmod    *gmod.Gmod
	parents []*gmod.GmodNode
	target  *gmod.GmodNode
}

// New validates and constructs a GmodPath from an explicit parent list
// and target node (spec §4.E). Skipping verification is for call sites
// that have already established the invariants, such as
// WithoutLocations and the path parsers' final assembly step.
func New(g *gmod.Gmod, target *gmod.GmodNode, parents []*gmod.GmodNode, skipVerify bool) (GmodPath, error) {
	p := GmodPath{Version: target.Version, gmod: g, parents: parents, target: target}
	if skipVerify {
		return p, nil
	}

	if len(parents) == 0 && !target.IsRoot() {
		return GmodPath{}, fmt.Errorf("invalid gmod path - no parents, and %s is not the root of gmod", target.Code)
	}
	if len(parents) > 0 && !parents[0].IsRoot() {
		return GmodPath{}, fmt.Errorf("invalid gmod path - first parent should be root of gmod (VE), but was %s", parents[0].Code)
	}

	for i, parent := range parents {
		var child *gmod.GmodNode
		if i+1 < len(parents) {
			child = parents[i+1]
		} else {
			child = target
		}
		if !g.IsChild(parent.Code, child.Code) {
			return GmodPath{}, fmt.Errorf("invalid gmod path - %s not child of %s", child.Code, parent.Code)
		}
	}

	if _, err := gmod.ComputeIndividualizableSets(parents, target); err != nil {
		return GmodPath{}, err
	}

	return p, nil
}

// IsValid reports whether parents+target satisfy the root and
// child-relation invariants, without checking location-set consistency
// (spec §4.G step 4: the full-path parser's cheap pre-check).
func IsValid(g *gmod.Gmod, target *gmod.GmodNode, parents []*gmod.GmodNode) bool {
	if len(parents) == 0 {
		return target.IsRoot()
	}
	if !parents[0].IsRoot() {
		return false
	}
	for i, parent := range parents {
		var child *gmod.GmodNode
		if i+1 < len(parents) {
			child = parents[i+1]
		} else {
			child = target
		}
		if !g.IsChild(parent.Code, child.Code) {
			return false
		}
	}
	return true
}

// IsValidPrefix checks the same root and child-relation invariants as
// IsValid, but on failure reports missingLinkAt, the index of the
// parent whose relation to its child first broke (len(parents)-1 if
// the final link to target broke).
func IsValidPrefix(g *gmod.Gmod, target *gmod.GmodNode, parents []*gmod.GmodNode) (missingLinkAt int, ok bool) {
	if len(parents) == 0 {
		if target.IsRoot() {
			return -1, true
		}
		return 0, false
	}
	if !parents[0].IsRoot() {
		return 0, false
	}
	for i, parent := range parents {
		var child *gmod.GmodNode
		if i+1 < len(parents) {
			child = parents[i+1]
		} else {
			child = target
		}
		if !g.IsChild(parent.Code, child.Code) {
			return i, false
		}
	}
	return -1, true
}

// Length is the total node count: parents plus the target.
func (p GmodPath) Length() int { return len(p.parents) + 1 }

// Parents returns the path's parent chain, root first.
func (p GmodPath) Parents() []*gmod.GmodNode { return p.parents }

// Target returns the path's final node.
func (p GmodPath) Target() *gmod.GmodNode { return p.target }

// Gmod returns the tree this path was built against.
func (p GmodPath) Gmod() *gmod.Gmod { return p.gmod }

// Node returns the node at index, where index 0..len(parents)-1 are
// parents and index len(parents) is the target.
func (p GmodPath) Node(index int) *gmod.GmodNode {
	if index < len(p.parents) {
		return p.parents[index]
	}
	return p.target
}

// Equal reports whether two paths have element-wise equal parent lists
// and targets, including locations (spec §3).
func (p GmodPath) Equal(other GmodPath) bool {
	if p.Length() != other.Length() {
		return false
	}
	for i := 0; i < p.Length(); i++ {
		if !p.Node(i).Equal(other.Node(i)) {
			return false
		}
	}
	return true
}

// WithoutLocations returns a copy of p with every node's location
// cleared. Skips verification since clearing locations can only remove
// invariant violations, never introduce them.
func (p GmodPath) WithoutLocations() GmodPath {
	newParents := make([]*gmod.GmodNode, len(p.parents))
	for i, parent := range p.parents {
		cleared := parent.WithoutLocation()
		newParents[i] = &cleared
	}
	clearedTarget := p.target.WithoutLocation()
	out, _ := New(p.gmod, &clearedTarget, newParents, true)
	return out
}

func formatNode(n *gmod.GmodNode) string {
	if n.Location.IsZero() {
		return n.Code
	}
	return n.Code + "-" + n.Location.String()
}

// String renders the short form: leaf and target nodes only (spec §4.E).
func (p GmodPath) String() string {
	var parts []string
	for i := 0; i < p.Length(); i++ {
		node := p.Node(i)
		if gmod.IsLeafNode(node) || i == p.Length()-1 {
			parts = append(parts, formatNode(node))
		}
	}
	return strings.Join(parts, "/")
}

// ToFullPathString renders every node on the chain, root to target.
func (p GmodPath) ToFullPathString() string {
	parts := make([]string, p.Length())
	for i := 0; i < p.Length(); i++ {
		parts[i] = formatNode(p.Node(i))
	}
	return strings.Join(parts, "/")
}
