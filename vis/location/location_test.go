package location

import (
	"testing"

	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestLocations(t *testing.T) *Locations {
	t.Helper()
	locs, err := NewLocations(visversion.Version3_4a, []RelativeLocation{
		{Code: 'P', Name: "Port", Value: NewCanonicalLocation("P"), Group: GroupSide},
		{Code: 'S', Name: "Starboard", Value: NewCanonicalLocation("S"), Group: GroupSide},
		{Code: 'U', Name: "Upper", Value: NewCanonicalLocation("U"), Group: GroupVertical},
		{Code: 'L', Name: "Lower", Value: NewCanonicalLocation("L"), Group: GroupVertical},
		{Code: 'H', Name: "Hull", Value: NewCanonicalLocation("H"), Group: GroupNone},
	})
	require.NoError(t, err)
	return locs
}

func TestParseValidLocations(t *testing.T) {
	locs := buildTestLocations(t)

	tests := []struct {
		in   string
		want string
	}{
		{"PU", "PU"},
		{"1PU", "1PU"},
		{"H", "H"},
		{"12", "12"},
		{"PH", "PH"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			errs := errctx.New()
			loc, ok := Parse(tt.in, locs, errs)
			require.True(t, ok, errs.Error())
			assert.Equal(t, tt.want, loc.String())
		})
	}
}

func TestParseRejectsWhitespaceOnly(t *testing.T) {
	locs := buildTestLocations(t)
	errs := errctx.New()

	_, ok := Parse("  ", locs, errs)
	assert.False(t, ok)
	assert.True(t, errs.HasState(errctx.StateLocationNullOrWhiteSpace))
}

func TestParseRejectsUnknownCode(t *testing.T) {
	locs := buildTestLocations(t)
	errs := errctx.New()

	_, ok := Parse("PX", locs, errs)
	assert.False(t, ok)
	assert.True(t, errs.HasState(errctx.StateLocationInvalidCode))
}

func TestParseRejectsDuplicateGroup(t *testing.T) {
	locs := buildTestLocations(t)
	errs := errctx.New()

	_, ok := Parse("PS", locs, errs)
	assert.False(t, ok)
	assert.True(t, errs.HasState(errctx.StateLocationInvalid))
}

func TestParseRejectsUnsortedLetters(t *testing.T) {
	locs := buildTestLocations(t)
	errs := errctx.New()

	_, ok := Parse("UP", locs, errs)
	assert.False(t, ok)
	assert.True(t, errs.HasState(errctx.StateLocationInvalidOrder))
}

func TestParseRejectsNumberAfterLetters(t *testing.T) {
	locs := buildTestLocations(t)
	errs := errctx.New()

	_, ok := Parse("P1", locs, errs)
	assert.False(t, ok)
	assert.True(t, errs.HasState(errctx.StateLocationInvalid))
}

func TestBuilderRoundTripsThroughWithLocation(t *testing.T) {
	locs := buildTestLocations(t)
	errs := errctx.New()

	loc, ok := Parse("1PU", locs, errs)
	require.True(t, ok, errs.Error())

	rebuilt, ok := NewBuilder(locs).WithLocation(loc).Build()
	require.True(t, ok)
	assert.True(t, loc.Equal(rebuilt))
}

func TestBuilderPanicsOnInvalidCode(t *testing.T) {
	locs := buildTestLocations(t)
	assert.Panics(t, func() { NewBuilder(locs).WithCode('X') })
}

func TestLocationZeroValueIsDistinctFromParsed(t *testing.T) {
	var zero Location
	assert.True(t, zero.IsZero())

	locs := buildTestLocations(t)
	errs := errctx.New()
	loc, ok := Parse("H", locs, errs)
	require.True(t, ok)
	assert.False(t, loc.IsZero())
	assert.False(t, loc.Equal(zero))
}
