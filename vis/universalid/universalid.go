package universalid

import (
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/localid"
)

// Prefix is the fixed host segment of every UniversalId (spec §4.K).
const Prefix = "data.dnv.com"

// UniversalId is an immutable {ShipID, LocalId} pair (spec §3).
type UniversalId struct {
	ShipID  ShipID
	LocalId localid.LocalId
}

// String renders "data.dnv.com/<ship-id>/<local-id-form>".
func (u UniversalId) String() string {
	return Prefix + "/" + u.ShipID.String() + u.LocalId.String()
}

// Builder is the immutable fluent UniversalId builder.
type Builder struct {
	shipID     ShipID
	localBuild localid.Builder
	hasLocal   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder { return Builder{} }

// WithImoNumber sets the ship identity to an ImoNumber.
func (b Builder) WithImoNumber(imo ImoNumber) Builder {
	out := b
	out.shipID = NewShipIDFromImo(imo)
	return out
}

// WithOtherShipID sets the ship identity to an opaque other-id.
func (b Builder) WithOtherShipID(id string) Builder {
	out := b
	out.shipID = NewShipIDFromOther(id)
	return out
}

// WithLocalIdBuilder sets the embedded LocalIdBuilder.
func (b Builder) WithLocalIdBuilder(lb localid.Builder) Builder {
	out := b
	out.localBuild = lb
	out.hasLocal = true
	return out
}

// Build assembles the UniversalId iff a ship identity is set and the
// embedded LocalIdBuilder produces a valid LocalId (spec §4.K).
func (b Builder) Build() (UniversalId, bool) {
	if b.shipID.IsZero() || !b.hasLocal {
		return UniversalId{}, false
	}
	lid, ok := b.localBuild.Build()
	if !ok {
		return UniversalId{}, false
	}
	return UniversalId{ShipID: b.shipID, LocalId: lid}, true
}

// localIdSeparator is the substring marking the boundary between the
// universal prefix and the embedded LocalId's own wire form.
const localIdSeparator = "/dnv-v"

func splitUniversalID(s string) (prefix, localIDPart string, ok bool) {
	idx := strings.Index(s, localIdSeparator)
	if idx == -1 {
		return "", "", false
	}
	return s[:idx], s[idx:], true
}
