// Package gmod implements the GMOD in-memory tree (spec §4.D): owning
// node storage, O(1) code lookup, the constrained traversal driver, and
// the individualizable-set visitor shared with the path parsers.
package gmod

import (
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// RootCode is the code of the GMOD's designated root node (spec §4.D).
const RootCode = "VE"

// NodeMetadata is the immutable descriptive payload of a GmodNode (spec §3).
type NodeMetadata struct {
	Category              string
	Type                  string
	Name                  string
	CommonName            *string
	Definition            *string
	CommonDefinition      *string
	InstallSubstructure    *bool
	// NormalAssignmentNames maps a child code to the display name used
	// when that child is reached via a normal (product-type) assignment.
	NormalAssignmentNames map[string]string
}

// GmodNode is an immutable record of one GMOD tree position (spec §3).
// Two GmodNode values are the same identifier iff their (Code, Location)
// pair is equal; adjacency is looked up through the owning Gmod rather
// than stored on the node, so a node carries no owning pointers.
type GmodNode struct {
	Version  visversion.Version
	Code     string
	Location location.Location
	Metadata NodeMetadata
}

// IsRoot reports whether this node is the GMOD root ("VE").
func (n *GmodNode) IsRoot() bool { return n.Code == RootCode }

// WithLocation returns a copy of n carrying loc. Callers are responsible
// for having established that loc belongs to an individualizable set
// (spec §4.E); this method does not re-validate.
func (n *GmodNode) WithLocation(loc location.Location) GmodNode {
	clone := *n
	clone.Location = loc
	return clone
}

// WithoutLocation returns a copy of n with no location.
func (n *GmodNode) WithoutLocation() GmodNode {
	clone := *n
	clone.Location = location.Location{}
	return clone
}

// Equal reports identifier equality: same code, same location.
func (n *GmodNode) Equal(other *GmodNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Code == other.Code && n.Location.Equal(other.Location)
}

// IsIndividualizable reports whether this node may carry a location
// (spec §4.D): never on a GROUP-type node, always for the path's target
// or for a node already known to be part of a multi-node set, and
// otherwise only for leaf or asset-function nodes.
func (n *GmodNode) IsIndividualizable(isTarget, isInSet bool) bool {
	if n.Metadata.Type == "GROUP" {
		return false
	}
	if isTarget || isInSet {
		return true
	}
	return IsLeafNode(n) || IsAssetFunctionNode(n)
}

// ProductType returns the child reached by this node's product-type
// assignment, if the owning Gmod recognizes one, else nil.
func (n *GmodNode) ProductType(g *Gmod) *GmodNode {
	return g.productTypeChild(n.Code)
}

// ProductSelection returns the child reached by this node's
// product-selection assignment, if any, else nil.
func (n *GmodNode) ProductSelection(g *Gmod) *GmodNode {
	return g.productSelectionChild(n.Code)
}
