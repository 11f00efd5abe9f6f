package universalid

import (
	"github.com/dnv-opensource/vista-sdk-go/vis/localid"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// PeekVersion extracts the VIS version tag from a UniversalId wire-form
// string without needing any loaded reference data.
func PeekVersion(item string) (visversion.Version, bool) {
	_, localPart, ok := splitUniversalID(item)
	if !ok {
		return visversion.VersionUnknown, false
	}
	return localid.PeekVersion(localPart)
}
