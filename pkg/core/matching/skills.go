package matching

import "strings"

// NormalizeSkill canonicalizes a skill identifier for comparison: lowercase
// with spaces replaced by underscores, so "Personal Care" and "personal_care"
// compare equal. Display code keeps the original form.
func NormalizeSkill(skill string) string {
	return strings.ReplaceAll(strings.ToLower(skill), " ", "_")
}

// NormalizeSkillSet builds a set of normalized skill identifiers.
// A nil or empty input yields an empty set, never nil-dereferences.
func NormalizeSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		set[NormalizeSkill(skill)] = true
	}
	return set
}
