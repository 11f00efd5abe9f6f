// Package versioning implements cross-VIS-version conversion of GMOD
// nodes, GmodPath values, and LocalId values (spec §4.J), grounded on
// the GMOD version-change tables a VIS release ships alongside its GMOD.
package versioning

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmodpath"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// NodeChange describes the single code-rename fact a versioning table
// records for one node code at one version step (spec §4.A). An empty
// Target means the node's code is unchanged by this step; its fate
// (kept or deleted) is decided by whether the code exists in the
// target Gmod.
type NodeChange struct {
	Target string
}

// Converter converts nodes, paths, and local ids between VIS versions
// (spec §4.J). Unlike the singleton-registry style of the reference
// implementation, a Converter is handed its Gmod set explicitly; the
// top-level vis package is responsible for wiring it to the registry's
// loaded versions.
type Converter struct {
	gmods map[visversion.Version]*gmod.Gmod
	steps map[visversion.Version]map[string]NodeChange
}

// NewConverter returns a Converter backed by gmods, one per VIS
// version it should be able to convert to or from.
func NewConverter(gmods map[visversion.Version]*gmod.Gmod) *Converter {
	return &Converter{
		gmods: gmods,
		steps: make(map[visversion.Version]map[string]NodeChange),
	}
}

// LoadStep registers the node-change table for the step that produces
// targetVersion from the version immediately before it.
func (c *Converter) LoadStep(targetVersion visversion.Version, changes map[string]NodeChange) {
	c.steps[targetVersion] = changes
}

// ConvertNode converts source, one version step at a time, from
// sourceVersion to targetVersion. A nil result with no error means the
// node was deleted somewhere along the chain.
func (c *Converter) ConvertNode(sourceVersion visversion.Version, source *gmod.GmodNode, targetVersion visversion.Version) (*gmod.GmodNode, error) {
	node := source
	v := sourceVersion
	for v.Before(targetVersion) {
		next, ok := v.Next()
		if !ok {
			return nil, fmt.Errorf("versioning: no version after %s while converting towards %s", v, targetVersion)
		}
		converted, err := c.convertNodeInternal(node, next)
		if err != nil {
			return nil, err
		}
		if converted == nil {
			return nil, nil
		}
		node = converted
		v = next
	}
	return node, nil
}

func (c *Converter) convertNodeInternal(source *gmod.GmodNode, targetVersion visversion.Version) (*gmod.GmodNode, error) {
	targetGmod, ok := c.gmods[targetVersion]
	if !ok {
		return nil, fmt.Errorf("versioning: no gmod loaded for version %s", targetVersion)
	}

	nextCode := source.Code
	if step, ok := c.steps[targetVersion]; ok {
		if change, ok := step[nextCode]; ok && change.Target != "" {
			nextCode = change.Target
		}
	}

	target, ok := targetGmod.Node(nextCode)
	if !ok {
		return nil, nil
	}
	if !source.Location.IsZero() {
		withLoc := target.WithLocation(source.Location)
		return &withLoc, nil
	}
	return target, nil
}

// ConvertPath converts an entire GmodPath to targetVersion (spec §4.J):
// the happy path re-converts every node and checks the result is
// already a valid chain; failing that it reconstructs a valid chain by
// walking the target Gmod between surviving qualifying nodes.
func (c *Converter) ConvertPath(sourceVersion visversion.Version, sourcePath gmodpath.GmodPath, targetVersion visversion.Version) (gmodpath.GmodPath, error) {
	targetEndNode, err := c.ConvertNode(sourceVersion, sourcePath.Target(), targetVersion)
	if err != nil {
		return gmodpath.GmodPath{}, err
	}
	if targetEndNode == nil {
		return gmodpath.GmodPath{}, fmt.Errorf("versioning: target node %s was deleted by version %s", sourcePath.Target().Code, targetVersion)
	}

	sourceGmod, ok := c.gmods[sourceVersion]
	if !ok {
		return gmodpath.GmodPath{}, fmt.Errorf("versioning: no gmod loaded for version %s", sourceVersion)
	}
	targetGmod, ok := c.gmods[targetVersion]
	if !ok {
		return gmodpath.GmodPath{}, fmt.Errorf("versioning: no gmod loaded for version %s", targetVersion)
	}

	if targetEndNode.IsRoot() {
		return gmodpath.New(targetGmod, targetGmod.Root(), nil, false)
	}

	type qualifyingNode struct {
		source *gmod.GmodNode
		target *gmod.GmodNode
	}

	qualifying := make([]qualifyingNode, sourcePath.Length())
	for i := 0; i < sourcePath.Length(); i++ {
		src := sourcePath.Node(i)
		converted, err := c.ConvertNode(sourceVersion, src, targetVersion)
		if err != nil {
			return gmodpath.GmodPath{}, err
		}
		if converted == nil {
			return gmodpath.GmodPath{}, fmt.Errorf("versioning: could not convert node %s forward", src.Code)
		}
		qualifying[i] = qualifyingNode{source: src, target: converted}
	}

	potentialParents := make([]*gmod.GmodNode, len(qualifying)-1)
	for i := 0; i < len(qualifying)-1; i++ {
		potentialParents[i] = qualifying[i].target
	}
	if gmodpath.IsValid(targetGmod, targetEndNode, potentialParents) {
		return gmodpath.New(targetGmod, targetEndNode, potentialParents, false)
	}

	var path []*gmod.GmodNode
	addToPath := func(node *gmod.GmodNode) error {
		if len(path) == 0 {
			path = append(path, node)
			return nil
		}
		if targetGmod.IsChild(path[len(path)-1].Code, node.Code) {
			path = append(path, node)
			return nil
		}
		for j := len(path) - 1; j >= 0; j-- {
			parent := path[j]
			prefix := path[:j+1]
			remaining, exists := targetGmod.PathExistsBetween(prefix, node.Code)
			if !exists {
				hasOtherAssetFunction := false
				for _, p := range prefix {
					if gmod.IsAssetFunctionNode(p) && p.Code != parent.Code {
						hasOtherAssetFunction = true
						break
					}
				}
				if !hasOtherAssetFunction {
					return fmt.Errorf("versioning: tried to remove last asset function node %s", parent.Code)
				}
				path = append(path[:j], path[j+1:]...)
				continue
			}

			nodesToAdd := make([]*gmod.GmodNode, 0, len(remaining))
			for _, code := range remaining {
				n := targetGmod.MustNode(code)
				if !node.Location.IsZero() && n.IsIndividualizable(false, true) {
					withLoc := n.WithLocation(node.Location)
					nodesToAdd = append(nodesToAdd, &withLoc)
				} else {
					nodesToAdd = append(nodesToAdd, n)
				}
			}
			path = append(path, nodesToAdd...)
			break
		}
		path = append(path, node)
		return nil
	}

	for i := 0; i < len(qualifying); i++ {
		q := qualifying[i]
		currentCode := q.target.Code
		if i > 0 && qualifying[i-1].target.Code == currentCode {
			continue
		}

		codeChanged := q.source.Code != currentCode
		sourceNormalAssignment := q.source.ProductType(sourceGmod)
		targetNormalAssignment := q.target.ProductType(targetGmod)
		normalAssignmentChanged := (sourceNormalAssignment == nil) != (targetNormalAssignment == nil) ||
			(sourceNormalAssignment != nil && targetNormalAssignment != nil && sourceNormalAssignment.Code != targetNormalAssignment.Code)

		if codeChanged {
			if err := addToPath(q.target); err != nil {
				return gmodpath.GmodPath{}, err
			}
		} else if normalAssignmentChanged {
			wasDeleted := sourceNormalAssignment != nil && targetNormalAssignment == nil

			if err := addToPath(q.target); err != nil {
				return gmodpath.GmodPath{}, err
			}

			if wasDeleted {
				if q.target.Code == targetEndNode.Code && i+1 < len(qualifying) {
					next := qualifying[i+1]
					if next.target.Code != q.target.Code {
						return gmodpath.GmodPath{}, fmt.Errorf("versioning: normal assignment end node was deleted")
					}
				}
				continue
			} else if currentCode != targetEndNode.Code && targetNormalAssignment != nil {
				assignment := targetNormalAssignment
				if !q.target.Location.IsZero() && targetNormalAssignment.IsIndividualizable(false, true) {
					withLoc := targetNormalAssignment.WithLocation(q.target.Location)
					assignment = &withLoc
				}
				if err := addToPath(assignment); err != nil {
					return gmodpath.GmodPath{}, err
				}
				i++
			}
		} else {
			if err := addToPath(q.target); err != nil {
				return gmodpath.GmodPath{}, err
			}
		}

		if len(path) > 0 && path[len(path)-1].Code == targetEndNode.Code {
			break
		}
	}

	if len(path) == 0 {
		return gmodpath.GmodPath{}, fmt.Errorf("versioning: path reconstruction resulted in an empty path")
	}

	reconstructedParents := path[:len(path)-1]
	reconstructedTarget := path[len(path)-1]
	if !gmodpath.IsValid(targetGmod, reconstructedTarget, reconstructedParents) {
		return gmodpath.GmodPath{}, fmt.Errorf("versioning: did not end up with a valid path")
	}
	return gmodpath.New(targetGmod, reconstructedTarget, reconstructedParents, false)
}
