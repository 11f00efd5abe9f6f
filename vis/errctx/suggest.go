package errctx

import "github.com/lithammer/fuzzysearch/fuzzy"

// Suggest returns up to n candidates from known that best resemble want,
// for "did you mean" hints attached to unknown-identifier errors (spec §7).
// Ranking follows fuzzy.RankFindNormalizedFold's distance order. A
// candidate matches only if it contains want's characters in order,
// ignoring case: a dropped character still matches, a substituted or
// transposed one does not.
func Suggest(want string, known []string, n int) []string {
	ranks := fuzzy.RankFindNormalizedFold(want, known)
	if len(ranks) == 0 {
		return nil
	}
	ranks.Sort()
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}
