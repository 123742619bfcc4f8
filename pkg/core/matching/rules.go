package matching

import (
	"fmt"

	"github.com/sundialcare/careadmin/pkg/core/model"
)

// Scoring weights. Each rule contributes at most its weight, so a candidate
// scores in [0, 100] overall.
const (
	// SkillWeight is the maximum contribution of skill coverage. Partial
	// coverage earns a proportional share.
	SkillWeight = 50.0

	// GenderWeight is the contribution when the candidate matches the
	// recipient's gender preference (or no preference exists). All or nothing.
	GenderWeight = 30.0

	// DistanceWeight is the maximum contribution of travel distance,
	// awarded in tiers.
	DistanceWeight = 20.0
)

// Distance tier boundaries (km) and their awards.
const (
	distanceVeryCloseKm = 5.0
	distanceCloseKm     = 10.0
	distanceModerateKm  = 15.0

	distanceClosePoints    = 15.0
	distanceModeratePoints = 10.0
	distanceFarPoints      = 5.0

	// An unknown distance is a neutral default, not a penalty.
	distanceUnknownPoints = 10.0
)

// ScoreComponent is the outcome of one scoring rule: the points awarded and a
// human-readable reason the operator sees next to the score.
type ScoreComponent struct {
	Points float64
	Reason string
}

// Rule scores one independent aspect of a candidate against a visit.
// Rules are pure functions: no rule may mutate its inputs or hold state.
type Rule func(candidate model.Caregiver, visit model.Visit, genderPreference string) ScoreComponent

// SkillRule awards up to SkillWeight for required-skill coverage.
// Skills are compared after normalization; a candidate with no skill list is
// treated as holding no skills.
func SkillRule(candidate model.Caregiver, visit model.Visit, _ string) ScoreComponent {
	if len(visit.Requirements) == 0 {
		return ScoreComponent{Points: SkillWeight, Reason: "No specific skills required"}
	}

	held := NormalizeSkillSet(candidate.Skills)

	matched := 0
	for _, required := range visit.Requirements {
		if held[NormalizeSkill(required)] {
			matched++
		}
	}

	if matched == len(visit.Requirements) {
		return ScoreComponent{Points: SkillWeight, Reason: "Has all required skills"}
	}

	// Fractional award; rounding happens only at the display boundary
	points := SkillWeight * float64(matched) / float64(len(visit.Requirements))
	return ScoreComponent{
		Points: points,
		Reason: fmt.Sprintf("Has %d of %d required skills", matched, len(visit.Requirements)),
	}
}

// GenderRule awards GenderWeight when the recipient has no preference or the
// candidate matches it, and nothing otherwise.
func GenderRule(candidate model.Caregiver, _ model.Visit, genderPreference string) ScoreComponent {
	if genderPreference == "" || genderPreference == model.NoPreference {
		return ScoreComponent{Points: GenderWeight, Reason: "No gender preference"}
	}

	if candidate.Gender == genderPreference {
		return ScoreComponent{
			Points: GenderWeight,
			Reason: fmt.Sprintf("Gender matches preference (%s)", genderPreference),
		}
	}

	return ScoreComponent{
		Points: 0,
		Reason: fmt.Sprintf("Gender mismatch: %s (prefers %s)", candidate.Gender, genderPreference),
	}
}

// DistanceRule awards tiered points by travel distance. A candidate with no
// computed distance gets the neutral middle award.
func DistanceRule(candidate model.Caregiver, _ model.Visit, _ string) ScoreComponent {
	if candidate.DistanceKm == nil {
		return ScoreComponent{Points: distanceUnknownPoints, Reason: "Distance unavailable"}
	}

	distance := *candidate.DistanceKm
	switch {
	case distance < distanceVeryCloseKm:
		return ScoreComponent{Points: DistanceWeight, Reason: "Very close"}
	case distance < distanceCloseKm:
		return ScoreComponent{Points: distanceClosePoints, Reason: "Close"}
	case distance < distanceModerateKm:
		return ScoreComponent{Points: distanceModeratePoints, Reason: "Moderate distance"}
	default:
		return ScoreComponent{Points: distanceFarPoints, Reason: "Far away"}
	}
}
