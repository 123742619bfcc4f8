package matching

import (
	"math"
	"sort"

	"github.com/sundialcare/careadmin/pkg/core/model"
)

// defaultRules is the scoring pipeline. Order only affects reason ordering,
// not the total: rules are independent and additive.
var defaultRules = []Rule{SkillRule, GenderRule, DistanceRule}

// MatchResult is the scored outcome for one candidate: a 0-100 total and the
// per-rule reasons, in pipeline order. Results are ephemeral and recomputed on
// demand; nothing here is persisted.
type MatchResult struct {
	Caregiver model.Caregiver
	Score     float64
	Reasons   []string
}

// Score runs every rule against the candidate and sums the components.
// The total stays unrounded; use DisplayScore at the presentation boundary.
// Scoring is side-effect free and safe to recompute on every refresh.
func Score(candidate model.Caregiver, visit model.Visit, genderPreference string) MatchResult {
	result := MatchResult{
		Caregiver: candidate,
		Reasons:   make([]string, 0, len(defaultRules)),
	}

	for _, rule := range defaultRules {
		component := rule(candidate, visit, genderPreference)
		result.Score += component.Points
		result.Reasons = append(result.Reasons, component.Reason)
	}

	return result
}

// Rank scores every candidate independently and orders them by descending
// total. Candidates are scored with no mutual exclusion; the actual assignment
// happens server-side. Ties keep the backend's original relative order (stable
// sort), since no secondary key is defined.
func Rank(candidates []model.Caregiver, visit model.Visit, genderPreference string) []MatchResult {
	results := make([]MatchResult, len(candidates))
	for i, candidate := range candidates {
		results[i] = Score(candidate, visit, genderPreference)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// DisplayScore rounds a score for presentation. Internal totals stay
// fractional so partial skill coverage ranks correctly.
func DisplayScore(score float64) int {
	return int(math.Round(score))
}
