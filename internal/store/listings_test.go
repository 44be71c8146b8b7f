package store

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilter_Empty(t *testing.T) {
	assert.Empty(t, searchFilter(""))
}

func TestSearchFilter_CaseInsensitiveExactMatch(t *testing.T) {
	filter := searchFilter("Apartment")
	rx, ok := filter["property_type"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "i", rx.Options)

	// Mirror the server-side semantics with Go's regexp engine.
	re, err := regexp.Compile("(?i)" + rx.Pattern)
	require.NoError(t, err)
	assert.True(t, re.MatchString("Apartment"))
	assert.True(t, re.MatchString("apartment"))
	assert.True(t, re.MatchString("APARTMENT"))
	assert.False(t, re.MatchString("Apartments"), "exact match, not substring")
	assert.False(t, re.MatchString("Serviced Apartment"))
}

func TestSearchFilter_EscapesMetaCharacters(t *testing.T) {
	filter := searchFilter("Bed & Breakfast (small)")
	rx, ok := filter["property_type"].(primitive.Regex)
	require.True(t, ok)

	re, err := regexp.Compile("(?i)" + rx.Pattern)
	require.NoError(t, err)
	assert.True(t, re.MatchString("bed & breakfast (small)"))
	assert.False(t, re.MatchString("Bed & Breakfast Xsmall)"))
}
