package loader

import (
	"encoding/json"
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/location"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

var locationGroups = map[string]location.Group{
	"":             location.GroupNone,
	"none":         location.GroupNone,
	"side":         location.GroupSide,
	"vertical":     location.GroupVertical,
	"transverse":   location.GroupTransverse,
	"longitudinal": location.GroupLongitudinal,
}

// decodeLocations is the opaque locations decoder (spec §4.A).
func decodeLocations(version visversion.Version, raw []byte) (*location.Locations, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("loader: locations payload is not valid JSON: %w", err)
	}
	if err := validate(KindLocations, generic); err != nil {
		return nil, err
	}

	var file locationsFileDTO
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("loader: decoding locations payload: %w", err)
	}

	relative := make([]location.RelativeLocation, len(file.Items))
	for i, item := range file.Items {
		if len(item.Code) != 1 {
			return nil, fmt.Errorf("loader: location code %q is not a single character", item.Code)
		}
		group, ok := locationGroups[item.Group]
		if !ok {
			return nil, fmt.Errorf("loader: unknown location group %q", item.Group)
		}
		relative[i] = location.RelativeLocation{
			Code:       item.Code[0],
			Name:       item.Name,
			Value:      location.NewCanonicalLocation(item.Code),
			Definition: item.Definition,
			Group:      group,
		}
	}

	return location.NewLocations(version, relative)
}
