package vis

import "github.com/dnv-opensource/vista-sdk-go/vis/internal/loader"

// config holds the options a VIS registry was constructed with.
type config struct {
	source         loader.Source
	cacheSnapshots bool
}

// Option configures a VIS registry at construction time (spec §5,
// SPEC_FULL.md §2.3: no external config file format, only functional
// options over Go values the caller already has).
type Option func(*config)

// WithSource sets the reference-data source the registry fetches
// gmod/codebooks/locations/versioning payloads from. Required; New
// panics if no source is given, since a registry with nothing to load
// from is a programmer error, not a runtime condition.
func WithSource(src loader.Source) Option {
	return func(c *config) { c.source = src }
}

// WithSnapshotCaching wraps the configured source in loader.CachingSource,
// which keeps each fetched payload in memory under a BLAKE2b hash of its
// CBOR encoding (SPEC_FULL.md §3). Every payload is still decoded and
// validated when a version is loaded.
func WithSnapshotCaching() Option {
	return func(c *config) { c.cacheSnapshots = true }
}
