package gmod

// The node-type vocabulary used by the predicates below comes from the
// GMOD reference data's "type" field: LEAF, GROUP, SELECTION, ASSET
// FUNCTION LEAF, and the various function/product/system categories
// used in combination with Metadata.Category.

// IsLeafNode reports whether node has no further decomposition: a node
// whose type marks it as a terminal position in the tree.
func IsLeafNode(node *GmodNode) bool {
	return node.Metadata.Type == "LEAF" || node.Metadata.Type == "ASSET FUNCTION LEAF"
}

// IsPotentialParent reports whether node can anchor the start or end of
// an individualizable run: SELECTION and GROUP nodes partition their
// children into sets, and LEAF nodes always terminate one.
func IsPotentialParent(node *GmodNode) bool {
	switch node.Metadata.Type {
	case "SELECTION", "GROUP", "LEAF":
		return true
	default:
		return false
	}
}

// IsFunctionComposition reports whether node's category marks it as a
// composition of functions rather than a single function, product, or
// system (spec §4.D: composition-only singleton sets do not carry a
// location).
func IsFunctionComposition(node *GmodNode) bool {
	return node.Metadata.Category == "FUNCTION COMPOSITION"
}

// IsAssetFunctionNode reports whether node belongs to the asset
// function subtree, which the version converter must never delete down
// to zero occurrences (spec §4.J).
func IsAssetFunctionNode(node *GmodNode) bool {
	return node.Metadata.Category == "ASSET FUNCTION"
}

// IsFunctionNode reports whether node's category marks it as some kind
// of function node (plain, composition, or asset), as opposed to a
// product or system node (spec §4.E commonNames).
func IsFunctionNode(node *GmodNode) bool {
	switch node.Metadata.Category {
	case "FUNCTION", "FUNCTION COMPOSITION", "ASSET FUNCTION":
		return true
	default:
		return false
	}
}

// IsProductTypeAssignment reports whether parent assigns child as its
// product type (spec §3 GmodNode.NormalAssignmentNames / §4.D).
func IsProductTypeAssignment(g *Gmod, parent, child *GmodNode) bool {
	return g.productTypeChild(parent.Code) != nil && g.productTypeChild(parent.Code).Code == child.Code
}

// IsProductSelectionAssignment reports whether parent assigns child as
// its product selection.
func IsProductSelectionAssignment(g *Gmod, parent, child *GmodNode) bool {
	return g.productSelectionChild(parent.Code) != nil && g.productSelectionChild(parent.Code).Code == child.Code
}
