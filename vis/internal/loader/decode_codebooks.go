package loader

import (
	"encoding/json"
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// codebookKeys maps the reference data's full codebook key to its Name,
// distinct from codebook.NameFromPrefix which resolves the short
// LocalId tag prefix instead.
var codebookKeys = map[string]codebook.Name{
	"quantity":             codebook.Quantity,
	"content":              codebook.Content,
	"calculation":          codebook.Calculation,
	"state":                codebook.State,
	"command":              codebook.Command,
	"type":                 codebook.Type,
	"functionalServices":   codebook.FunctionalServices,
	"maintenanceCategory":  codebook.MaintenanceCategory,
	"activityType":         codebook.ActivityType,
	"position":             codebook.Position,
	"detail":               codebook.Detail,
}

// decodeCodebooks is the opaque codebooks decoder (spec §4.A).
func decodeCodebooks(version visversion.Version, raw []byte) (*codebook.Codebooks, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("loader: codebooks payload is not valid JSON: %w", err)
	}
	if err := validate(KindCodebooks, generic); err != nil {
		return nil, err
	}

	var file codebooksFileDTO
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("loader: decoding codebooks payload: %w", err)
	}

	byName := make(map[codebook.Name][]codebook.StandardValue, len(file.Items))
	for _, entry := range file.Items {
		name, ok := codebookKeys[entry.Name]
		if !ok {
			return nil, fmt.Errorf("loader: unknown codebook key %q", entry.Name)
		}
		values := make([]codebook.StandardValue, len(entry.Values))
		for i, v := range entry.Values {
			values[i] = codebook.StandardValue{Value: v.Value, Group: v.Group}
		}
		byName[name] = values
	}

	return codebook.NewCodebooks(version, byName), nil
}
