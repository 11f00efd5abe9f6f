package loader

import (
	"encoding/json"
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/versioning"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// decodeVersioning is the opaque versioning decoder (spec §4.A): one
// payload describes a single adjacent version step's node-change table,
// keyed by the step's target version.
func decodeVersioning(raw []byte) (targetVersion visversion.Version, changes map[string]versioning.NodeChange, err error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return visversion.VersionUnknown, nil, fmt.Errorf("loader: versioning payload is not valid JSON: %w", err)
	}
	if err := validate(KindVersioning, generic); err != nil {
		return visversion.VersionUnknown, nil, err
	}

	var file versioningFileDTO
	if err := json.Unmarshal(raw, &file); err != nil {
		return visversion.VersionUnknown, nil, fmt.Errorf("loader: decoding versioning payload: %w", err)
	}

	target, ok := visversion.ParseVersion(file.TargetVersion)
	if !ok {
		return visversion.VersionUnknown, nil, fmt.Errorf("loader: unknown target VIS version %q", file.TargetVersion)
	}

	out := make(map[string]versioning.NodeChange, len(file.Items))
	for code, item := range file.Items {
		out[code] = versioning.NodeChange{Target: item.Target}
	}

	return target, out, nil
}
