package codebook

import (
	"testing"

	"github.com/dnv-opensource/vista-sdk-go/vis/errctx"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPositionCodebook() *Codebook {
	return NewCodebook(Position, []StandardValue{
		{Value: "upper", Group: "Vertical"},
		{Value: "centre", Group: "Lateral"},
	})
}

func TestValidatePositionEnumeration(t *testing.T) {
	cb := buildPositionCodebook()

	tests := []struct {
		name string
		want PositionValidationResult
	}{
		{"centre", PositionValid},
		{"42", PositionValid},
		{"custom", PositionCustom},
		{"upper-centre", PositionValid},
		{"centre-upper", PositionInvalidOrder},
		{"upper-upper", PositionInvalidGrouping},
		{"42-centre", PositionInvalidOrder},
		{"", PositionInvalid},
		{" x ", PositionInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cb.ValidatePosition(tt.name))
		})
	}
}

func TestCreateTagStandardVsCustom(t *testing.T) {
	books := NewCodebooks(visversion.Version3_4a, map[Name][]StandardValue{
		Quantity: {{Value: "temperature"}},
		Position: {
			{Value: "upper", Group: "Vertical"},
			{Value: "centre", Group: "Lateral"},
		},
		Detail: {{Value: "exhaust.gas"}},
	})

	tag, ok := books.CreateTag(Quantity, "temperature")
	require.True(t, ok)
	assert.False(t, tag.IsCustom)
	assert.Equal(t, "qty-temperature", tag.String())

	tag, ok = books.CreateTag(Quantity, "humidity")
	require.True(t, ok)
	assert.True(t, tag.IsCustom)
	assert.Equal(t, "qty~humidity", tag.String())

	_, ok = books.CreateTag(Quantity, "")
	assert.False(t, ok)

	tag, ok = books.CreateTag(Position, "upper-centre")
	require.True(t, ok)
	assert.False(t, tag.IsCustom)

	_, ok = books.CreateTag(Position, "centre-upper")
	assert.False(t, ok)

	tag, ok = books.CreateTag(Detail, "exhaust.gas")
	require.True(t, ok)
	assert.False(t, tag.IsCustom)

	_, ok = books.CreateTag(Detail, "bad value")
	assert.False(t, ok)
}

func TestIsContentCodebookExcludesReferenceOnlyNames(t *testing.T) {
	assert.True(t, IsContentCodebook(Quantity))
	assert.True(t, IsContentCodebook(Position))
	assert.False(t, IsContentCodebook(FunctionalServices))
}

func TestStandardValuesFeedsSuggest(t *testing.T) {
	books := NewCodebooks(visversion.Version3_4a, map[Name][]StandardValue{
		Quantity: {{Value: "temperature"}, {Value: "pressure"}},
	})

	got := errctx.Suggest("temperatur", books.Get(Quantity).StandardValues(), 3)
	assert.Contains(t, got, "temperature")
}

func TestNameFromPrefixRoundTrips(t *testing.T) {
	for _, n := range AllNames() {
		got, ok := NameFromPrefix(n.Prefix())
		require.True(t, ok)
		assert.Equal(t, n, got)
	}

	_, ok := NameFromPrefix("nope")
	assert.False(t, ok)
}
