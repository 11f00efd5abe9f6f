package universalid

import (
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/localid"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
)

// Parse parses a UniversalId wire-form string (spec §4.K): the universal
// prefix up to the first "/dnv-v" boundary is split off from the
// embedded LocalId, which is parsed on its own.
func Parse(item string, g *gmod.Gmod, locs *location.Locations, books *codebook.Codebooks) (UniversalId, *errctx.Errors, bool) {
	errs := errctx.New()

	prefixPart, localPart, ok := splitUniversalID(item)
	if !ok {
		errs.Add(errctx.StateFormatting, "missing local id segment, expected '/dnv-v...'")
		return UniversalId{}, errs, false
	}

	if !strings.HasPrefix(prefixPart, Prefix+"/") {
		errs.Addf(errctx.StateFormatting, "expected prefix %q, got %q", Prefix, prefixPart)
		return UniversalId{}, errs, false
	}
	shipSegment := strings.TrimPrefix(prefixPart, Prefix+"/")
	if shipSegment == "" {
		errs.Add(errctx.StateFormatting, "missing ship id segment")
		return UniversalId{}, errs, false
	}
	shipID := ParseShipID(shipSegment)

	lid, lidErrs, lidOk := localid.Parse(localPart, g, locs, books)
	for _, entry := range lidErrs.Entries() {
		errs.Add(entry.State, entry.Message)
	}
	if !lidOk {
		return UniversalId{}, errs, false
	}

	return UniversalId{ShipID: shipID, LocalId: lid}, errs, true
}
