package localid

import (
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// PeekVersion extracts the VIS version tag from a LocalId wire-form
// string without needing any loaded reference data, so a registry can
// decide which version's snapshot to load before parsing the rest.
func PeekVersion(item string) (visversion.Version, bool) {
	if !strings.HasPrefix(item, "/") {
		return visversion.VersionUnknown, false
	}
	segments := strings.Split(strings.TrimPrefix(item, "/"), "/")
	if len(segments) < 2 || segments[0] != NamingRule {
		return visversion.VersionUnknown, false
	}
	visSeg := segments[1]
	if !strings.HasPrefix(visSeg, "vis-") {
		return visversion.VersionUnknown, false
	}
	return visversion.ParseVersion(strings.TrimPrefix(visSeg, "vis-"))
}
