package resume

import (
	"regexp"
	"strings"
)

// Fields holds the candidate data recovered from resume text. Every field
// defaults to the empty string (or empty slice) when no pattern matches;
// a resume that yields nothing is not an error.
type Fields struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}

// Each field is matched independently: a primary pattern first, then a
// labeled-line fallback where the source format suggests one. These are
// heuristics, not a grammar; overlapping or malformed sections may produce
// partial or empty results and that is accepted silently.
var (
	nameLineStart = regexp.MustCompile(`(?m)^([A-Z][a-z]+(?: [A-Z][a-z]+)+)`)
	nameLabeled   = regexp.MustCompile(`(?i:Name:?[ \t]*)([A-Z][a-z]+(?: [A-Z][a-z]+)+)`)

	emailAnywhere = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	emailLabeled  = regexp.MustCompile(`(?i)Email:?[ \t]*([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)

	phoneAnywhere = regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}\b`)
	phoneLabeled  = regexp.MustCompile(`(?i)Phone:?[ \t]*((?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4})`)

	skillsSection = regexp.MustCompile(`(?i)(?:Skills|Technical Skills|Core Competencies|Expertise|Proficiencies):?[ \t]*([\s\S]*?)(?:\n\n|\n[A-Z])`)
	skillsSplit   = regexp.MustCompile(`,|\n•|\n-|\n\*|\n`)

	experienceSection = regexp.MustCompile(`(?i)(?:Experience|Work Experience|Professional Experience|Employment History):?[ \t]*([\s\S]*?)(?:\n\n\w|Education|Skills)`)
)

// maxSkillLen rejects captured pieces that are clearly prose, not a skill token.
const maxSkillLen = 50

// ParseFields recovers name, email, phone, skills, and a free-text experience
// block from plain resume text. Fields are extracted independently; no field's
// result depends on another's.
func ParseFields(text string) Fields {
	return Fields{
		Name:       extractName(text),
		Email:      firstMatch(text, emailAnywhere, emailLabeled),
		Phone:      firstMatch(text, phoneAnywhere, phoneLabeled),
		Skills:     extractSkills(text),
		Experience: extractExperience(text),
	}
}

func extractName(text string) string {
	if m := nameLineStart.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := nameLabeled.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// firstMatch tries the anywhere pattern, then the labeled fallback. The
// anywhere pattern's whole match is the value; the fallback's first group is.
func firstMatch(text string, anywhere, labeled *regexp.Regexp) string {
	if m := anywhere.FindString(text); m != "" {
		return m
	}
	if m := labeled.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func extractSkills(text string) []string {
	m := skillsSection.FindStringSubmatch(text)
	if m == nil {
		return []string{}
	}

	skills := []string{}
	for _, piece := range skillsSplit.Split(m[1], -1) {
		piece = strings.TrimSpace(piece)
		if piece == "" || len(piece) >= maxSkillLen {
			continue
		}
		skills = append(skills, piece)
	}
	return skills
}

func extractExperience(text string) string {
	m := experienceSection.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
