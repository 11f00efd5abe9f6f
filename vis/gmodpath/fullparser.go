package gmodpath

import (
	"fmt"
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
)

// ParseFullPath parses a full-form path string (spec §4.G): every node
// from the root to the target, each with its own optional location.
func ParseFullPath(item string, g *gmod.Gmod, locs *location.Locations) (GmodPath, *errctx.Errors, bool) {
	errs := errctx.New()

	if !strings.HasPrefix(item, gmod.RootCode+"/") && item != gmod.RootCode {
		errs.Addf(errctx.StateGmodPath, "full path must start with %s", gmod.RootCode)
		return GmodPath{}, errs, false
	}

	var nodes []*gmod.GmodNode
	for _, seg := range strings.Split(item, "/") {
		if seg == "" {
			continue
		}
		code, locStr, hasDash := strings.Cut(seg, "-")
		node, known := g.Node(code)
		if !known {
			msg := fmt.Sprintf("unknown gmod code %q", code)
			if sug := errctx.Suggest(code, g.Codes(), 3); len(sug) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(sug, ", "))
			}
			errs.Add(errctx.StateGmodPath, msg)
			return GmodPath{}, errs, false
		}
		if hasDash {
			loc, ok := location.Parse(locStr, locs, errs)
			if !ok {
				return GmodPath{}, errs, false
			}
			withLoc := node.WithLocation(loc)
			node = &withLoc
		}
		nodes = append(nodes, node)
	}

	if len(nodes) == 0 {
		errs.Add(errctx.StateGmodPath, "empty gmod path")
		return GmodPath{}, errs, false
	}

	target := nodes[len(nodes)-1]
	parents := nodes[:len(nodes)-1]

	if !IsValid(g, target, parents) {
		errs.Add(errctx.StateGmodPath, "Sequence of nodes are invalid")
		return GmodPath{}, errs, false
	}

	sets, err := gmod.ComputeIndividualizableSets(parents, target)
	if err != nil {
		errs.Addf(errctx.StateGmodPath, "%s", err)
		return GmodPath{}, errs, false
	}

	covered := make([]bool, len(nodes))
	for _, set := range sets {
		for i := set.Start; i <= set.End; i++ {
			covered[i] = true
			if !set.Location.IsZero() {
				nodes[i] = applyAccumulatedLocation(nodes[i], map[string]location.Location{nodes[i].Code: set.Location})
			}
		}
	}
	for i, node := range nodes {
		if !covered[i] && !node.Location.IsZero() {
			errs.Addf(errctx.StateGmodPath, "expected no individualization on %s", node.Code)
			return GmodPath{}, errs, false
		}
	}

	target = nodes[len(nodes)-1]
	parents = nodes[:len(nodes)-1]

	path, buildErr := New(g, target, parents, true)
	if buildErr != nil {
		errs.Addf(errctx.StateGmodPath, "%s", buildErr)
		return GmodPath{}, errs, false
	}
	return path, errs, true
}
