package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		StatusNew, StatusReviewed, StatusShortlisted,
		StatusInterviewed, StatusOffered, StatusHired, StatusRejected,
	} {
		assert.True(t, ValidStatus(s), s)
	}

	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("new"))
	assert.False(t, ValidStatus("Ghosted"))
}
