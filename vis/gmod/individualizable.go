package gmod

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/location"
)

// IndividualizableSet is one contiguous run of path nodes that share a
// single location (spec §3 GmodIndividualizableSet, §4.D). Start and End
// are indexes into the conceptual [parents..., target] sequence; a
// singleton set has Start == End.
type IndividualizableSet struct {
	Start, End int
	Location   location.Location
}

// ComputeIndividualizableSets walks a path's parent chain plus its
// target node and partitions it into the runs that may carry a shared
// location, enforcing that every node within one run already carries
// the same location (or none). It is the Go port of the GMOD's
// potential-parent-bounded run detection (spec §4.D).
//
// An error is returned if two nodes within what would be one run carry
// different non-empty locations, or if a run is interrupted in its
// middle by a node that cannot join it.
func ComputeIndividualizableSets(parents []*GmodNode, target *GmodNode) ([]IndividualizableSet, error) {
	v := &locationSetsVisitor{currentParentStart: -1}
	n := len(parents) + 1

	var sets []IndividualizableSet
	for i := 0; i < n; i++ {
		node := nodeAt(i, parents, target)
		result, ok, err := v.visit(node, i, parents, target)
		if err != nil {
			return nil, err
		}
		if ok {
			loc := location.Location{}
			if result.hasLoc {
				loc = result.loc
			}
			sets = append(sets, IndividualizableSet{Start: result.start, End: result.end, Location: loc})
		}
	}
	return sets, nil
}

func nodeAt(j int, parents []*GmodNode, target *GmodNode) *GmodNode {
	if j < len(parents) {
		return parents[j]
	}
	return target
}

type setRun struct {
	start, end int
	loc        location.Location
	hasLoc     bool
}

type locationSetsVisitor struct {
	currentParentStart int
}

func (v *locationSetsVisitor) visit(node *GmodNode, i int, parents []*GmodNode, target *GmodNode) (setRun, bool, error) {
	isParent := IsPotentialParent(node)
	isTargetNode := i == len(parents)

	if v.currentParentStart == -1 {
		if isParent {
			v.currentParentStart = i
		}
		if node.IsIndividualizable(isTargetNode, false) {
			return setRun{start: i, end: i, loc: node.Location, hasLoc: !node.Location.IsZero()}, true, nil
		}
		return setRun{}, false, nil
	}

	var run setRun
	var hasRun bool

	if isParent || isTargetNode {
		if v.currentParentStart+1 == i {
			if node.IsIndividualizable(isTargetNode, false) {
				run = setRun{start: i, end: i, loc: node.Location, hasLoc: !node.Location.IsZero()}
				hasRun = true
			}
		} else {
			skippedOne := -1
			hasComposition := false

			for j := v.currentParentStart + 1; j <= i; j++ {
				setNode := nodeAt(j, parents, target)
				if !setNode.IsIndividualizable(j == len(parents), true) {
					if hasRun {
						skippedOne = j
					}
					continue
				}

				if hasRun && run.hasLoc && !setNode.Location.IsZero() && !run.loc.Equal(setNode.Location) {
					return setRun{}, false, fmt.Errorf("gmod: different locations in the same individualizable set")
				}
				if skippedOne != -1 {
					return setRun{}, false, fmt.Errorf("gmod: cannot skip a node in the middle of an individualizable set")
				}
				if IsFunctionComposition(setNode) {
					hasComposition = true
				}

				loc, hasLoc := setNode.Location, !setNode.Location.IsZero()
				if hasRun && run.hasLoc {
					loc, hasLoc = run.loc, true
				}
				start := j
				if hasRun {
					start = run.start
				}
				run = setRun{start: start, end: j, loc: loc, hasLoc: hasLoc}
				hasRun = true
			}

			if hasRun && run.start == run.end && hasComposition {
				hasRun = false
			}
		}

		v.currentParentStart = i

		if hasRun {
			hasLeaf := false
			for j := run.start; j <= run.end; j++ {
				setNode := nodeAt(j, parents, target)
				if IsLeafNode(setNode) || j == len(parents) {
					hasLeaf = true
					break
				}
			}
			if hasLeaf {
				return run, true, nil
			}
		}
	}

	if isTargetNode && node.IsIndividualizable(isTargetNode, false) {
		return setRun{start: i, end: i, loc: node.Location, hasLoc: !node.Location.IsZero()}, true, nil
	}

	return setRun{}, false, nil
}
