package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestJobFilters_Query(t *testing.T) {
	assert.Equal(t, bson.M{}, JobFilters{}.query())

	featured := true
	query := JobFilters{
		Status:     JobStatusPublished,
		Department: "Engineering",
		Featured:   &featured,
	}.query()

	assert.Equal(t, bson.M{
		"status":     "Published",
		"department": "Engineering",
		"featured":   true,
	}, query)

	notFeatured := false
	assert.Equal(t, bson.M{"featured": false}, JobFilters{Featured: &notFeatured}.query())
}

func TestInterviewFilters_Query(t *testing.T) {
	assert.Equal(t, bson.M{}, InterviewFilters{}.query())

	query := InterviewFilters{
		ApplicationID: "app-1",
		Status:        InterviewStatusScheduled,
	}.query()

	assert.Equal(t, bson.M{
		"applicationId": "app-1",
		"status":        "Scheduled",
	}, query)
}

func TestValidJobStatus(t *testing.T) {
	for _, s := range []string{JobStatusDraft, JobStatusPublished, JobStatusClosed} {
		assert.True(t, ValidJobStatus(s), s)
	}
	assert.False(t, ValidJobStatus("Archived"))
	assert.False(t, ValidJobStatus(""))
}

func TestValidInterviewStatus(t *testing.T) {
	for _, s := range []string{
		InterviewStatusScheduled,
		InterviewStatusCompleted,
		InterviewStatusCancelled,
		InterviewStatusNoShow,
	} {
		assert.True(t, ValidInterviewStatus(s), s)
	}
	assert.False(t, ValidInterviewStatus("Skipped"))
}
