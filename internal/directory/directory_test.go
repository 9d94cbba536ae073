package directory_test

import (
	"testing"

	"unityeats/internal/directory"
	"unityeats/internal/models"

	"github.com/stretchr/testify/assert"
)

func verifiedNGOs() []models.NGO {
	return []models.NGO{
		{
			ID:      "ngo1",
			Name:    "Food For All",
			Address: "789 Charity Ave, Helptown",
			ServiceAreas: models.ServiceAreas{
				"Downtown", "Eastside", "North County",
			},
			VerificationStatus: models.VerificationVerified,
		},
		{
			ID:      "ngo2",
			Name:    "Hunger Heroes",
			Address: "101 Hope St, Goodcity",
			ServiceAreas: models.ServiceAreas{
				"Westside", "South County", "Central District",
			},
			VerificationStatus: models.VerificationVerified,
		},
	}
}

func ids(ngos []models.NGO) []string {
	out := make([]string, 0, len(ngos))
	for _, n := range ngos {
		out = append(out, n.ID)
	}
	return out
}

func TestFilterEmptyQueryReturnsEverything(t *testing.T) {
	ngos := verifiedNGOs()

	assert.ElementsMatch(t, ids(ngos), ids(directory.Filter(ngos, "")))
	assert.ElementsMatch(t, ids(ngos), ids(directory.Filter(ngos, "   ")))
}

func TestFilterMatchesName(t *testing.T) {
	result := directory.Filter(verifiedNGOs(), "heroes")

	assert.Equal(t, []string{"ngo2"}, ids(result))
}

func TestFilterMatchesAddressCaseInsensitive(t *testing.T) {
	for _, query := range []string{"hope", "HOPE", "Hope"} {
		result := directory.Filter(verifiedNGOs(), query)

		assert.Equal(t, []string{"ngo2"}, ids(result), "query %q", query)
	}
}

func TestFilterMatchesServiceArea(t *testing.T) {
	result := directory.Filter(verifiedNGOs(), "eastside")

	assert.Equal(t, []string{"ngo1"}, ids(result))
}

func TestFilterMatchesAcrossFields(t *testing.T) {
	// "county" appears in service areas of both NGOs
	result := directory.Filter(verifiedNGOs(), "county")

	assert.ElementsMatch(t, []string{"ngo1", "ngo2"}, ids(result))
}

func TestFilterNoMatch(t *testing.T) {
	result := directory.Filter(verifiedNGOs(), "nonexistent")

	assert.Empty(t, result)
}
