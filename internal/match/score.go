// Package match computes a bounded heuristic compatibility score between a
// candidate's stated skills and a position's stated requirements.
package match

import (
	"math"
	"strings"
)

// DefaultScore is the base score every application receives. Scoring never
// blocks an application: any failure to resolve the position's requirements
// text degrades to this value.
const DefaultScore = 70

// maxBonus is the largest number of points keyword overlap can add.
const maxBonus = 30

// Score returns an integer in [70, 100]. Each candidate skill that appears
// (case-insensitively) as a substring of the requirements text counts as a
// match; the bonus is floor(min(30, matchCount/totalSkills*30)). An empty
// skill list yields the base score rather than a division by zero.
func Score(skills []string, requirements string) int {
	if len(skills) == 0 {
		return DefaultScore
	}

	lowered := strings.ToLower(requirements)
	matchCount := 0
	for _, skill := range skills {
		if strings.Contains(lowered, strings.ToLower(skill)) {
			matchCount++
		}
	}

	bonus := int(math.Floor(math.Min(maxBonus, float64(matchCount)/float64(len(skills))*maxBonus)))
	return DefaultScore + bonus
}
