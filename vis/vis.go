// Package vis is the façade over reference-data loading, identifier
// parsing, and cross-version conversion (spec §5): a lazily-initialized,
// thread-safe registry of per-version snapshots, plus convenience
// constructors for GmodPath, LocalId, and UniversalId that hide the
// three-way (Gmod, Locations, Codebooks) threading those parsers need.
package vis

import (
	"fmt"
	"sync"

	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmodpath"
	"github.com/dnv-opensource/vista-sdk-go/vis/internal/invariant"
	"github.com/dnv-opensource/vista-sdk-go/vis/internal/loader"
	"github.com/dnv-opensource/vista-sdk-go/vis/localid"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
	"github.com/dnv-opensource/vista-sdk-go/vis/universalid"
	"github.com/dnv-opensource/vista-sdk-go/vis/versioning"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
)

// Version re-exports visversion.Version so callers depend on a single
// package for the whole public surface.
type Version = visversion.Version

// Re-exported version constants, mirroring visversion's enum.
const (
	Version3_4a = visversion.Version3_4a
	Version3_5a = visversion.Version3_5a
	Version3_6a = visversion.Version3_6a
	Version3_7a = visversion.Version3_7a
	Version3_8a = visversion.Version3_8a
	Version3_9a = visversion.Version3_9a
)

// LatestVersion returns the newest VIS version this build knows about.
func LatestVersion() Version { return visversion.LatestVersion() }

// ParseVersionTag parses a canonical "x-ya" version tag, e.g. "3-9a".
func ParseVersionTag(s string) (Version, bool) { return visversion.ParseVersion(s) }

// VIS is the lazily-populated, thread-safe registry of loaded reference
// data (spec §5): "initialized lazily on first access and then frozen."
// Each version's snapshot, once loaded, is never mutated or evicted —
// only the map of which versions have been loaded grows.
type VIS struct {
	cfg config

	mu        sync.RWMutex
	snapshots map[Version]*loader.Snapshot

	convOnce sync.Once
	conv     *versioning.Converter
	convErr  error
}

// New constructs a VIS registry. A source is required; nothing is loaded
// until the first call that needs a given version's reference data.
func New(opts ...Option) *VIS {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	invariant.Precondition(cfg.source != nil, "vis.New requires vis.WithSource")

	if cfg.cacheSnapshots {
		cfg.source = loader.CachingSource(cfg.source)
	}

	return &VIS{cfg: cfg, snapshots: make(map[Version]*loader.Snapshot)}
}

// snapshot returns the loaded snapshot for version, loading it on first
// request. Concurrent callers requesting the same unloaded version may
// both load it; the loser's result is discarded, since snapshots are
// pure functions of (source, version) and the loaded value is identical
// either way — the alternative (a per-version lock) buys nothing here.
func (v *VIS) snapshot(version Version) (*loader.Snapshot, error) {
	v.mu.RLock()
	snap, ok := v.snapshots[version]
	v.mu.RUnlock()
	if ok {
		return snap, nil
	}

	snap, err := loader.Load(v.cfg.source, version)
	if err != nil {
		return nil, fmt.Errorf("vis: loading %s: %w", version, err)
	}

	v.mu.Lock()
	if existing, ok := v.snapshots[version]; ok {
		v.mu.Unlock()
		return existing, nil
	}
	v.snapshots[version] = snap
	v.mu.Unlock()

	return snap, nil
}

// Gmod returns the loaded Gmod tree for version.
func (v *VIS) Gmod(version Version) (*gmod.Gmod, error) {
	snap, err := v.snapshot(version)
	if err != nil {
		return nil, err
	}
	return snap.Gmod, nil
}

// Codebooks returns the loaded Codebooks set for version.
func (v *VIS) Codebooks(version Version) (*codebook.Codebooks, error) {
	snap, err := v.snapshot(version)
	if err != nil {
		return nil, err
	}
	return snap.Codebooks, nil
}

// Locations returns the loaded Locations set for version.
func (v *VIS) Locations(version Version) (*location.Locations, error) {
	snap, err := v.snapshot(version)
	if err != nil {
		return nil, err
	}
	return snap.Locations, nil
}

// ParseGmodPath parses item as a GmodPath short form against version's
// loaded reference data (spec §4.F).
func (v *VIS) ParseGmodPath(item string, version Version) (gmodpath.GmodPath, *errctx.Errors, error) {
	snap, err := v.snapshot(version)
	if err != nil {
		return gmodpath.GmodPath{}, nil, err
	}
	path, errs, ok := gmodpath.Parse(item, snap.Gmod, snap.Locations)
	if !ok {
		return gmodpath.GmodPath{}, errs, nil
	}
	return path, errs, nil
}

// ParseGmodFullPath parses item as a GmodPath full form (spec §4.G).
func (v *VIS) ParseGmodFullPath(item string, version Version) (gmodpath.GmodPath, *errctx.Errors, error) {
	snap, err := v.snapshot(version)
	if err != nil {
		return gmodpath.GmodPath{}, nil, err
	}
	path, errs, ok := gmodpath.ParseFullPath(item, snap.Gmod, snap.Locations)
	if !ok {
		return gmodpath.GmodPath{}, errs, nil
	}
	return path, errs, nil
}

// ParseLocalId parses item as a LocalId (spec §4.I), loading whichever
// VIS version the identifier itself names.
func (v *VIS) ParseLocalId(item string) (localid.LocalId, *errctx.Errors, error) {
	version, ok := localid.PeekVersion(item)
	if !ok {
		errs := errctx.New()
		errs.Add(errctx.StateFormatting, "could not determine VIS version from local id")
		return localid.LocalId{}, errs, nil
	}

	snap, err := v.snapshot(version)
	if err != nil {
		return localid.LocalId{}, nil, err
	}
	lid, errs, ok := localid.Parse(item, snap.Gmod, snap.Locations, snap.Codebooks)
	if !ok {
		return localid.LocalId{}, errs, nil
	}
	return lid, errs, nil
}

// ParseUniversalId parses item as a UniversalId (spec §4.K).
func (v *VIS) ParseUniversalId(item string) (universalid.UniversalId, *errctx.Errors, error) {
	version, ok := universalid.PeekVersion(item)
	if !ok {
		errs := errctx.New()
		errs.Add(errctx.StateFormatting, "could not determine VIS version from universal id")
		return universalid.UniversalId{}, errs, nil
	}

	snap, err := v.snapshot(version)
	if err != nil {
		return universalid.UniversalId{}, nil, err
	}
	uid, errs, ok := universalid.Parse(item, snap.Gmod, snap.Locations, snap.Codebooks)
	if !ok {
		return universalid.UniversalId{}, errs, nil
	}
	return uid, errs, nil
}

// converter lazily builds the cross-version Converter by loading a gmod
// for every defined VIS version (failing if any one cannot be loaded), plus every
// versioning step between them (spec §4.J). Built once per registry and
// reused, since the converter itself is immutable after construction.
func (v *VIS) converter() (*versioning.Converter, error) {
	v.convOnce.Do(func() {
		gmods := make(map[Version]*gmod.Gmod, len(visversion.AllVersions()))
		for _, ver := range visversion.AllVersions() {
			snap, err := v.snapshot(ver)
			if err != nil {
				v.convErr = fmt.Errorf("vis: loading %s for conversion: %w", ver, err)
				return
			}
			gmods[ver] = snap.Gmod
		}

		conv := versioning.NewConverter(gmods)
		for _, ver := range visversion.AllVersions() {
			if ver == visversion.Version3_4a {
				continue
			}
			if err := loader.LoadVersioningStep(v.cfg.source, conv, ver); err != nil {
				v.convErr = fmt.Errorf("vis: loading versioning step to %s: %w", ver, err)
				return
			}
		}
		v.conv = conv
	})
	return v.conv, v.convErr
}

// ConvertGmodPath converts path from its own version to targetVersion
// (spec §4.J).
func (v *VIS) ConvertGmodPath(path gmodpath.GmodPath, targetVersion Version) (gmodpath.GmodPath, error) {
	conv, err := v.converter()
	if err != nil {
		return gmodpath.GmodPath{}, err
	}
	return conv.ConvertPath(path.Version, path, targetVersion)
}

// ConvertLocalId converts id from its own version to targetVersion
// (spec §4.J).
func (v *VIS) ConvertLocalId(id localid.LocalId, targetVersion Version) (localid.LocalId, error) {
	conv, err := v.converter()
	if err != nil {
		return localid.LocalId{}, err
	}
	return conv.ConvertLocalId(id, targetVersion)
}
