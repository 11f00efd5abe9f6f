package gmodpath

import (
	"fmt"
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
)

type pathToken struct {
	code   string
	loc    location.Location
	hasLoc bool
}

func tokenizeShortPath(item string, g *gmod.Gmod, locs *location.Locations, errs *errctx.Errors) ([]pathToken, bool) {
	var tokens []pathToken
	for _, seg := range strings.Split(item, "/") {
		if seg == "" {
			continue
		}

		code, locStr, hasDash := strings.Cut(seg, "-")
		node, known := g.Node(code)

		var tok pathToken
		if hasDash {
			loc, ok := location.Parse(locStr, locs, errs)
			if !ok {
				return nil, false
			}
			tok = pathToken{code: code, loc: loc, hasLoc: true}
		} else {
			tok = pathToken{code: code}
		}

		if !known {
			msg := fmt.Sprintf("unknown gmod code %q in %q", code, seg)
			if sug := errctx.Suggest(code, g.Codes(), 3); len(sug) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(sug, ", "))
			}
			errs.Add(errctx.StateGmodPath, msg)
			return nil, false
		}
		_ = node
		tokens = append(tokens, tok)
	}
	return tokens, true
}

type shortPathState struct {
	queue     []pathToken
	locByCode map[string]location.Location
	target    *gmod.GmodNode
	parents   []*gmod.GmodNode
}

func shortPathHandler(ctx *shortPathState, parents []*gmod.GmodNode, node *gmod.GmodNode) gmod.VisitResult {
	if len(parents) == 0 {
		// node is the traversal's starting node: already matched as the
		// first token before the driver was invoked. When it was the only
		// token, it is the target itself.
		if len(ctx.queue) == 0 {
			ctx.target = node
			ctx.parents = nil
			return gmod.Stop
		}
		return gmod.Continue
	}
	if len(ctx.queue) == 0 {
		return gmod.Stop
	}

	head := ctx.queue[0]
	if node.Code != head.code {
		if gmod.IsLeafNode(node) {
			return gmod.SkipSubtree
		}
		return gmod.Continue
	}

	if head.hasLoc {
		ctx.locByCode[node.Code] = head.loc
	}
	ctx.queue = ctx.queue[1:]

	if len(ctx.queue) == 0 {
		ctx.target = node
		ctx.parents = append([]*gmod.GmodNode{}, parents...)
		return gmod.Stop
	}
	return gmod.Continue
}

// Parse parses a short-form path string (spec §4.F): a slash-separated
// sequence of significant codes that the traversal driver joins into the
// full, unique, rooted chain through g.
func Parse(item string, g *gmod.Gmod, locs *location.Locations) (GmodPath, *errctx.Errors, bool) {
	errs := errctx.New()

	tokens, ok := tokenizeShortPath(item, g, locs, errs)
	if !ok {
		return GmodPath{}, errs, false
	}
	if len(tokens) == 0 {
		errs.Add(errctx.StateGmodPath, "empty gmod path")
		return GmodPath{}, errs, false
	}

	first := tokens[0]
	startNode := g.MustNode(first.code)

	if startNode.IsRoot() {
		root := *startNode
		if first.hasLoc {
			root = root.WithLocation(first.loc)
		}
		path, err := New(g, &root, nil, false)
		if err != nil {
			errs.Addf(errctx.StateGmodPath, "%s", err)
			return GmodPath{}, errs, false
		}
		return path, errs, true
	}

	state := &shortPathState{queue: tokens[1:], locByCode: make(map[string]location.Location)}
	if first.hasLoc {
		state.locByCode[first.code] = first.loc
	}

	gmod.Traverse(state, startNode, g, shortPathHandler, gmod.TraversalOptions{MaxOccurrence: 1})

	if state.target == nil {
		errs.Addf(errctx.StateGmodPath, "could not find a path for %q", item)
		return GmodPath{}, errs, false
	}

	prefix, ok := ancestorsToRoot(g, startNode.Code)
	if !ok {
		errs.Addf(errctx.StateGmodPath, "no unique parent path to root from %q", startNode.Code)
		return GmodPath{}, errs, false
	}

	allParents := append(append([]*gmod.GmodNode{}, prefix...), state.parents...)
	rewritten := make([]*gmod.GmodNode, len(allParents))
	for i, node := range allParents {
		rewritten[i] = applyAccumulatedLocation(node, state.locByCode)
	}
	target := applyAccumulatedLocation(state.target, state.locByCode)

	path, err := New(g, target, rewritten, false)
	if err != nil {
		errs.Addf(errctx.StateGmodPath, "%s", err)
		return GmodPath{}, errs, false
	}
	return path, errs, true
}

func applyAccumulatedLocation(node *gmod.GmodNode, locByCode map[string]location.Location) *gmod.GmodNode {
	loc, ok := locByCode[node.Code]
	if !ok {
		return node
	}
	withLoc := node.WithLocation(loc)
	return &withLoc
}

// ancestorsToRoot walks upward from code following each node's unique
// parent, returning the chain root..parent-of-code. Fails if any step
// lacks exactly one parent.
func ancestorsToRoot(g *gmod.Gmod, code string) ([]*gmod.GmodNode, bool) {
	var prefix []*gmod.GmodNode
	cur := code
	for cur != gmod.RootCode {
		parents := g.Parents(cur)
		if len(parents) != 1 {
			return nil, false
		}
		parentNode := g.MustNode(parents[0])
		prefix = append([]*gmod.GmodNode{parentNode}, prefix...)
		cur = parents[0]
	}
	return prefix, true
}
