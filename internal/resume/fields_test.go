package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFields_LabeledEmail(t *testing.T) {
	text := "Jane Doe\nEmail: jane.doe@example.com\nPhone: 555-123-4567"

	fields := ParseFields(text)

	assert.Equal(t, "jane.doe@example.com", fields.Email)
	assert.Equal(t, "Jane Doe", fields.Name)
	assert.Equal(t, "555-123-4567", fields.Phone)
}

func TestParseFields_UnlabeledEmail(t *testing.T) {
	fields := ParseFields("Contact me at someone@corp.io for details")

	assert.Equal(t, "someone@corp.io", fields.Email)
}

func TestParseFields_SkillsSection(t *testing.T) {
	text := "Skills: React, Node.js, SQL\n\nExperience:"

	fields := ParseFields(text)

	assert.Equal(t, []string{"React", "Node.js", "SQL"}, fields.Skills)
}

func TestParseFields_SkillsBulleted(t *testing.T) {
	text := "Technical Skills:\n• Go\n• PostgreSQL\n• Docker\n\nEducation"

	fields := ParseFields(text)

	assert.Contains(t, fields.Skills, "Go")
	assert.Contains(t, fields.Skills, "PostgreSQL")
	assert.Contains(t, fields.Skills, "Docker")
}

func TestParseFields_SkillsDropsOverlongEntries(t *testing.T) {
	long := "this skill entry is far too long to be a real skill because it just keeps going"
	text := "Skills: Go, " + long + ", SQL\n\nExperience:"

	fields := ParseFields(text)

	assert.Contains(t, fields.Skills, "Go")
	assert.Contains(t, fields.Skills, "SQL")
	assert.NotContains(t, fields.Skills, long)
}

func TestParseFields_PhoneFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashes", "Phone: 555-123-4567", "555-123-4567"},
		{"dots", "Phone: 555.123.4567", "555.123.4567"},
		// The word boundary cannot sit before "(" or "+", so the match
		// starts at the first digit. Kept for fidelity with the heuristic.
		{"parens", "Phone: (555) 123-4567", "555) 123-4567"},
		{"country code", "Phone: +1 555 123 4567", "1 555 123 4567"},
		{"unlabeled", "Reach me on 555-123-4567 any time", "555-123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ParseFields(tt.text)
			assert.Equal(t, tt.want, fields.Phone)
		})
	}
}

func TestParseFields_NameFromFirstLine(t *testing.T) {
	fields := ParseFields("John Smith\nSoftware Engineer\njohn@example.com")

	assert.Equal(t, "John Smith", fields.Name)
}

func TestParseFields_ExperienceSection(t *testing.T) {
	text := "Jane Doe\n\nExperience:\nAcme Corp, senior engineer, 2019-2024\n\nEducation\nState University"

	fields := ParseFields(text)

	assert.Contains(t, fields.Experience, "Acme Corp")
}

func TestParseFields_EmptyText(t *testing.T) {
	fields := ParseFields("")

	assert.Empty(t, fields.Name)
	assert.Empty(t, fields.Email)
	assert.Empty(t, fields.Phone)
	assert.Empty(t, fields.Experience)
	assert.NotNil(t, fields.Skills, "skills should be an empty slice, not nil")
	assert.Empty(t, fields.Skills)
}

func TestParseFields_NoMatchesInProse(t *testing.T) {
	fields := ParseFields("lowercase text without any recognizable structure")

	assert.Empty(t, fields.Name)
	assert.Empty(t, fields.Email)
	assert.Empty(t, fields.Skills)
}
