package gmodpath

import (
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
)

// IndividualizableSet is one contiguous range of a GmodPath's nodes that
// share a single location (spec §3 GmodIndividualizableSet). It is
// derived on demand from the path, never stored on it.
type IndividualizableSet struct {
	path     GmodPath
	start    int
	end      int
	Location location.Location
}

// Nodes returns the path nodes covered by this set, in path order.
func (s IndividualizableSet) Nodes() []*gmod.GmodNode {
	out := make([]*gmod.GmodNode, 0, s.end-s.start+1)
	for i := s.start; i <= s.end; i++ {
		out = append(out, s.path.Node(i))
	}
	return out
}

// String renders the set as the slash-joined short form of its leaf and
// terminal members, mirroring GmodPath.String's selection rule.
func (s IndividualizableSet) String() string {
	var parts []string
	for i, node := range s.Nodes() {
		idx := s.start + i
		if gmod.IsLeafNode(node) || idx == s.end {
			parts = append(parts, formatNode(node))
		}
	}
	return strings.Join(parts, "/")
}

// IndividualizableSets yields one IndividualizableSet per run the
// individualizable-set visitor finds along this path.
func (p GmodPath) IndividualizableSets() ([]IndividualizableSet, error) {
	raw, err := gmod.ComputeIndividualizableSets(p.parents, p.target)
	if err != nil {
		return nil, err
	}
	out := make([]IndividualizableSet, 0, len(raw))
	for _, r := range raw {
		out = append(out, IndividualizableSet{path: p, start: r.Start, end: r.End, Location: r.Location})
	}
	return out, nil
}

// NormalAssignmentName climbs down from the target, returning the first
// normal-assignment display name whose key equals any descendant code
// in the path, starting at nodeDepth (spec §4.E).
func (p GmodPath) NormalAssignmentName(nodeDepth int) (string, bool) {
	if nodeDepth < 0 || nodeDepth >= p.Length() {
		return "", false
	}
	names := p.Node(nodeDepth).Metadata.NormalAssignmentNames
	if len(names) == 0 {
		return "", false
	}
	for i := p.Length() - 1; i >= 0; i-- {
		if name, ok := names[p.Node(i).Code]; ok {
			return name, true
		}
	}
	return "", false
}

// CommonName is one entry of CommonNames: the path depth and the
// display name chosen for the node at that depth.
type CommonName struct {
	Depth int
	Name  string
}

// CommonNames yields, for each function node on the path that is a leaf
// or the target, its display name: an override from the node's own
// normal-assignment table if one exists (the key matching the deepest code
// between this node and the target, else the target's own code), else its
// common name, else its plain name (spec §4.E).
func (p GmodPath) CommonNames() []CommonName {
	var out []CommonName
	for depth := 0; depth < p.Length(); depth++ {
		node := p.Node(depth)
		isTarget := depth == p.Length()-1
		if !(gmod.IsLeafNode(node) || isTarget) || !gmod.IsFunctionNode(node) {
			continue
		}

		name := node.Metadata.Name
		if node.Metadata.CommonName != nil && *node.Metadata.CommonName != "" {
			name = *node.Metadata.CommonName
		}

		if names := node.Metadata.NormalAssignmentNames; len(names) > 0 {
			if override, ok := names[p.target.Code]; ok {
				name = override
			}
			for i := p.Length() - 2; i >= depth; i-- {
				if override, ok := names[p.Node(i).Code]; ok {
					name = override
					break
				}
			}
		}

		out = append(out, CommonName{Depth: depth, Name: name})
	}
	return out
}
