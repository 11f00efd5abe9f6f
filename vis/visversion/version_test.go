package visversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionRoundTrips(t *testing.T) {
	for _, v := range AllVersions() {
		got, ok := ParseVersion(v.String())
		require.True(t, ok)
		assert.Equal(t, v, got)
	}

	_, ok := ParseVersion("9-9z")
	assert.False(t, ok)
}

func TestNextWalksTotalOrder(t *testing.T) {
	versions := AllVersions()
	for i := 0; i < len(versions)-1; i++ {
		next, ok := versions[i].Next()
		require.True(t, ok)
		assert.Equal(t, versions[i+1], next)
	}

	_, ok := LatestVersion().Next()
	assert.False(t, ok)
}

func TestBeforeOrdersConsistentlyWithNext(t *testing.T) {
	assert.True(t, Version3_4a.Before(Version3_9a))
	assert.False(t, Version3_9a.Before(Version3_4a))
	assert.False(t, Version3_4a.Before(Version3_4a))
}

func TestMustParseVersionPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { MustParseVersion("bogus") })
}

func TestLatestVersionIsLastInOrder(t *testing.T) {
	versions := AllVersions()
	assert.Equal(t, versions[len(versions)-1], LatestVersion())
}
