package localid

import (
	"fmt"
	"strings"

	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmodpath"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// Parse parses a LocalId wire-form string (spec §4.I). A missing leading
// '/', a bad naming rule or VIS version, an empty primary item, or a
// missing meta segment stops parsing at once; an invalid primary or
// secondary item and bad metadata segments are accumulated and parsing
// goes on.
func Parse(item string, g *gmod.Gmod, locs *location.Locations, books *codebook.Codebooks) (LocalId, *errctx.Errors, bool) {
	errs := errctx.New()

	if !strings.HasPrefix(item, "/") {
		errs.Add(errctx.StateNamingRule, "local id must start with '/'")
		return LocalId{}, errs, false
	}
	segments := strings.Split(strings.TrimPrefix(item, "/"), "/")
	idx := 0

	if idx >= len(segments) || segments[idx] != NamingRule {
		errs.Addf(errctx.StateNamingRule, "invalid naming rule, expected %q", NamingRule)
		return LocalId{}, errs, false
	}
	idx++

	if idx >= len(segments) {
		errs.Add(errctx.StateVisVersion, "missing vis version")
		return LocalId{}, errs, false
	}
	visSeg := segments[idx]
	if !strings.HasPrefix(visSeg, "vis-") {
		errs.Addf(errctx.StateVisVersion, "invalid vis version format, expected 'vis-X-Ya', got %q", visSeg)
		return LocalId{}, errs, false
	}
	versionStr := strings.TrimPrefix(visSeg, "vis-")
	version, knownVersion := visversion.ParseVersion(versionStr)
	if !knownVersion {
		errs.Addf(errctx.StateVisVersion, "unknown vis version %q", versionStr)
		return LocalId{}, errs, false
	}
	idx++

	primaryStart := idx
	for idx < len(segments) && !isPrimaryBoundary(segments[idx]) {
		idx++
	}
	if idx == primaryStart {
		errs.Add(errctx.StatePrimaryItem, "missing primary item")
		return LocalId{}, errs, false
	}
	primaryStr := strings.Join(segments[primaryStart:idx], "/")
	primaryPath, primaryErrs, primaryOk := gmodpath.Parse(primaryStr, g, locs)
	if !primaryOk {
		errs.Addf(errctx.StatePrimaryItem, "invalid primary item %q: %s", primaryStr, primaryErrs.Error())
	}

	var secondaryPath *gmodpath.GmodPath
	if idx < len(segments) && segments[idx] == "sec" {
		idx++
		secStart := idx
		for idx < len(segments) && !isSecondaryBoundary(segments[idx]) {
			idx++
		}
		if idx == secStart {
			errs.Add(errctx.StateSecondaryItem, "missing secondary item")
		} else {
			secStr := strings.Join(segments[secStart:idx], "/")
			sp, secErrs, secOk := gmodpath.Parse(secStr, g, locs)
			if !secOk {
				errs.Addf(errctx.StateSecondaryItem, "invalid secondary item %q: %s", secStr, secErrs.Error())
			} else {
				secondaryPath = &sp
			}
		}
	}

	for idx < len(segments) && strings.HasPrefix(segments[idx], "~") {
		idx++
	}

	if idx >= len(segments) || segments[idx] != "meta" {
		errs.Add(errctx.StateFormatting, "missing meta segment")
		return LocalId{}, errs, false
	}
	idx++

	tags := make(map[codebook.Name]codebook.MetadataTag)
	for ; idx < len(segments); idx++ {
		seg := segments[idx]
		if seg == "" {
			continue
		}
		prefix, value, bad := splitMetaSegment(seg)
		if bad {
			errs.Addf(errctx.StateFormatting, "invalid metadata segment %q", seg)
			continue
		}
		name, known := codebook.NameFromPrefix(prefix)
		if !known {
			msg := fmt.Sprintf("unknown codebook prefix %q", prefix)
			if sug := errctx.Suggest(prefix, codebook.AllPrefixes(), 3); len(sug) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(sug, ", "))
			}
			errs.Add(errctx.StateFormatting, msg)
			continue
		}
		tag, ok := books.CreateTag(name, value)
		if !ok {
			msg := fmt.Sprintf("invalid value %q for codebook %q", value, prefix)
			if sug := errctx.Suggest(value, books.Get(name).StandardValues(), 3); len(sug) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(sug, ", "))
			}
			errs.Add(metaState(name), msg)
			continue
		}
		tags[name] = tag
	}

	if len(tags) == 0 {
		errs.Add(errctx.StateCompleteness, "local id must have at least one metadata tag")
	}

	if !primaryOk || len(tags) == 0 {
		return LocalId{}, errs, false
	}

	return LocalId{
		Version:       version,
		PrimaryItem:   primaryPath,
		SecondaryItem: secondaryPath,
		tags:          tags,
	}, errs, true
}

func isPrimaryBoundary(seg string) bool {
	return seg == "sec" || seg == "meta" || strings.HasPrefix(seg, "~")
}

func isSecondaryBoundary(seg string) bool {
	return seg == "meta" || strings.HasPrefix(seg, "~")
}

// splitMetaSegment splits a metadata segment at its first '-' or '~',
// whichever comes first (spec §4.I step 8).
func splitMetaSegment(seg string) (prefix, value string, bad bool) {
	dash := strings.IndexByte(seg, '-')
	tilde := strings.IndexByte(seg, '~')

	sepIdx := -1
	switch {
	case dash == -1:
		sepIdx = tilde
	case tilde == -1:
		sepIdx = dash
	case dash < tilde:
		sepIdx = dash
	default:
		sepIdx = tilde
	}

	if sepIdx <= 0 {
		return "", "", true
	}
	return seg[:sepIdx], seg[sepIdx+1:], false
}

func metaState(name codebook.Name) errctx.State {
	switch name {
	case codebook.Quantity:
		return errctx.StateMetaQuantity
	case codebook.Content:
		return errctx.StateMetaContent
	case codebook.Calculation:
		return errctx.StateMetaCalculation
	case codebook.State:
		return errctx.StateMetaState
	case codebook.Command:
		return errctx.StateMetaCommand
	case codebook.Type:
		return errctx.StateMetaType
	case codebook.Position:
		return errctx.StateMetaPosition
	case codebook.Detail:
		return errctx.StateMetaDetail
	default:
		return errctx.StateFormatting
	}
}
