package loader

import (
	"encoding/json"
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// decodeGmod is the opaque gmod decoder (spec §4.A): validates raw
// against the gmod schema, then assembles a *gmod.Gmod. Relation or
// assignment edges naming an unknown code are reported, not fatal,
// matching gmod.NewGmod's own contract.
func decodeGmod(version visversion.Version, raw []byte) (*gmod.Gmod, []error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, []error{fmt.Errorf("loader: gmod payload is not valid JSON: %w", err)}
	}
	if err := validate(KindGmod, generic); err != nil {
		return nil, []error{err}
	}

	var file gmodFileDTO
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, []error{fmt.Errorf("loader: decoding gmod payload: %w", err)}
	}

	nodes := make([]gmod.GmodNode, len(file.Items))
	for i, item := range file.Items {
		nodes[i] = gmod.GmodNode{
			Version: version,
			Code:    item.Code,
			Metadata: gmod.NodeMetadata{
				Category:              item.Category,
				Type:                  item.Type,
				Name:                  item.Name,
				CommonName:            item.CommonName,
				Definition:            item.Definition,
				CommonDefinition:      item.CommonDefinition,
				InstallSubstructure:   item.InstallSubstructure,
				NormalAssignmentNames: item.NormalAssignmentNames,
			},
		}
	}

	relations := make([]gmod.Relation, len(file.Relations))
	for i, r := range file.Relations {
		relations[i] = gmod.Relation{ParentCode: r[0], ChildCode: r[1]}
	}

	assignments := make([]gmod.Assignment, 0, len(file.ProductTypeAssignments)+len(file.ProductSelectionAssignments))
	for _, a := range file.ProductTypeAssignments {
		assignments = append(assignments, gmod.Assignment{ParentCode: a[0], ChildCode: a[1]})
	}
	for _, a := range file.ProductSelectionAssignments {
		assignments = append(assignments, gmod.Assignment{ParentCode: a[0], ChildCode: a[1]})
	}

	return gmod.NewGmod(version, nodes, relations, assignments)
}
