// Package directory implements the search over the verified NGO set. The
// verified set is small, so matching is a linear scan rather than a query.
package directory

import (
	"strings"

	"unityeats/internal/models"
)

// Filter returns the NGOs matching the query. An empty or whitespace-only
// query matches everything. Otherwise the query is matched case-insensitively
// as a substring of the name, the address, or any service area.
func Filter(ngos []models.NGO, query string) []models.NGO {
	query = strings.TrimSpace(query)
	if query == "" {
		return ngos
	}

	q := strings.ToLower(query)
	matched := make([]models.NGO, 0, len(ngos))
	for _, ngo := range ngos {
		if matches(ngo, q) {
			matched = append(matched, ngo)
		}
	}
	return matched
}

func matches(ngo models.NGO, q string) bool {
	if strings.Contains(strings.ToLower(ngo.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(ngo.Address), q) {
		return true
	}
	for _, area := range ngo.ServiceAreas {
		if strings.Contains(strings.ToLower(area), q) {
			return true
		}
	}
	return false
}
