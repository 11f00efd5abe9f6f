package errctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsAccumulatesInOrder(t *testing.T) {
	errs := New()
	assert.False(t, errs.HasErrors())

	errs.Add(StateFormatting, "first problem")
	errs.Addf(StateGmodPath, "second %s", "problem")

	assert.True(t, errs.HasErrors())
	assert.True(t, errs.HasState(StateFormatting))
	assert.True(t, errs.HasState(StateGmodPath))
	assert.False(t, errs.HasState(StateCompleteness))

	assert.Equal(t, "\tFormatting - first problem\n\tGmodPath - second problem", errs.Error())
}

func TestNilErrorsIsSafe(t *testing.T) {
	var errs *Errors
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "", errs.Error())
	assert.Nil(t, errs.Entries())
	assert.False(t, errs.HasState(StateFormatting))
}

func TestSuggestRanksClosestMatches(t *testing.T) {
	known := []string{"temperature", "pressure", "tempo", "humidity"}

	got := Suggest("temp", known, 2)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "temperature")
}

func TestSuggestReturnsNilWhenNothingMatches(t *testing.T) {
	got := Suggest("zzzzzzzzzzzzzz", []string{"temperature"}, 3)
	assert.Nil(t, got)
}
