package loader

import (
	"fmt"
	"sync"

	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// cachePayload is the canonical, CBOR-encodable shape of one raw
// reference-data fetch, keyed by content rather than by (version, kind):
// two payloads with identical bytes share a cache slot even if fetched
// under different Source implementations.
type cachePayload struct {
	Kind Kind
	Raw  []byte
}

// MarshalBinary produces a deterministic CBOR encoding so that the
// BLAKE2b digest below is stable across runs.
func (p *cachePayload) MarshalBinary() ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("loader: creating CBOR encoder: %w", err)
	}

	type cachePayloadAlias cachePayload
	alias := (*cachePayloadAlias)(p)

	data, err := encMode.Marshal(alias)
	if err != nil {
		return nil, fmt.Errorf("loader: CBOR encoding payload: %w", err)
	}
	return data, nil
}

// digest returns the BLAKE2b-256 content hash of the payload's canonical
// encoding, used as the snapshot cache key.
func (p *cachePayload) digest() ([32]byte, error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(data), nil
}

// snapshotCache keeps every payload its inner Source returns in memory
// under the payload's content hash. Every Fetch still calls the inner
// Source, and the caller still decodes and validates the bytes returned.
type snapshotCache struct {
	inner Source

	mu      sync.Mutex
	payload map[[32]byte][]byte
}

// CachingSource wraps src so that byte-identical payloads share one
// cache entry; the cache key is the payload's own content hash, not its
// (version, kind). Caching does not skip decoding or validation: the
// caller decodes and validates every payload it receives.
func CachingSource(src Source) Source {
	return &snapshotCache{inner: src, payload: make(map[[32]byte][]byte)}
}

func (c *snapshotCache) Fetch(version visversion.Version, kind Kind) ([]byte, error) {
	raw, err := c.inner.Fetch(version, kind)
	if err != nil {
		return nil, err
	}

	payload := cachePayload{Kind: kind, Raw: raw}
	key, err := payload.digest()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.payload[key]; ok {
		return cached, nil
	}
	c.payload[key] = raw
	return raw, nil
}
