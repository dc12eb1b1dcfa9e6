//go:build integration

package docstore

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func getTestStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set, skipping integration test")
	}

	ctx := context.Background()
	store, err := Connect(ctx, uri, "talentdesk_test")
	if err != nil {
		t.Fatalf("Failed to connect to test document store: %v", err)
	}
	return store
}

func createTestJob(t *testing.T, store *Store, status string) *JobListing {
	t.Helper()

	job, err := store.CreateJobListing(context.Background(), &JobListing{
		Title:       "Test Engineer " + uuid.New().String(),
		Department:  "Engineering",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "Test listing.",
		Status:      status,
	})
	if err != nil {
		t.Fatalf("CreateJobListing failed: %v", err)
	}
	t.Cleanup(func() {
		_, _ = store.DeleteJobListing(context.Background(), job.ID.Hex())
	})
	return job
}

func TestIntegration_JobListing_CRUD(t *testing.T) {
	store := getTestStore(t)
	ctx := context.Background()
	defer store.Close(ctx)

	t.Run("create defaults to draft", func(t *testing.T) {
		job := createTestJob(t, store, "")
		if job.Status != JobStatusDraft {
			t.Errorf("Status = %q, want Draft", job.Status)
		}
		if job.Requirements == nil || job.Responsibilities == nil || job.Benefits == nil {
			t.Error("Slice fields should be normalized to empty, not nil")
		}
	})

	t.Run("get by id", func(t *testing.T) {
		job := createTestJob(t, store, JobStatusPublished)

		got, err := store.GetJobListing(ctx, job.ID.Hex())
		if err != nil {
			t.Fatalf("GetJobListing failed: %v", err)
		}
		if got == nil || got.Title != job.Title {
			t.Errorf("Unexpected listing: %+v", got)
		}

		if got, _ := store.GetJobListing(ctx, "not-a-hex-id"); got != nil {
			t.Error("Malformed id should return nil")
		}
	})

	t.Run("list filters by status", func(t *testing.T) {
		published := createTestJob(t, store, JobStatusPublished)
		draft := createTestJob(t, store, "")

		jobs, err := store.ListJobListings(ctx, JobFilters{Status: JobStatusPublished})
		if err != nil {
			t.Fatalf("ListJobListings failed: %v", err)
		}
		for _, j := range jobs {
			if j.Status != JobStatusPublished {
				t.Errorf("Filter leaked status %q", j.Status)
			}
			if j.ID == draft.ID {
				t.Error("Draft listing should not appear in published filter")
			}
		}
		found := false
		for _, j := range jobs {
			if j.ID == published.ID {
				found = true
			}
		}
		if !found {
			t.Error("Published listing missing from filtered list")
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		job := createTestJob(t, store, JobStatusPublished)

		updated, err := store.UpdateJobListing(ctx, job.ID.Hex(), bson.M{
			"status":   JobStatusClosed,
			"featured": true,
		})
		if err != nil {
			t.Fatalf("UpdateJobListing failed: %v", err)
		}
		if updated.Status != JobStatusClosed || !updated.Featured {
			t.Errorf("Unexpected update result: %+v", updated)
		}
		if !updated.UpdatedAt.After(job.UpdatedAt) {
			t.Error("UpdatedAt should move forward on update")
		}

		deleted, err := store.DeleteJobListing(ctx, job.ID.Hex())
		if err != nil {
			t.Fatalf("DeleteJobListing failed: %v", err)
		}
		if !deleted {
			t.Error("Expected the listing to be deleted")
		}
		if deleted, _ := store.DeleteJobListing(ctx, job.ID.Hex()); deleted {
			t.Error("Second delete should report false")
		}
	})

	t.Run("bulk insert", func(t *testing.T) {
		count, err := store.InsertJobListings(ctx, []JobListing{
			{Title: "Bulk One " + uuid.New().String(), Department: "Engineering", Location: "Remote", Type: "Contract", Description: "x"},
			{Title: "Bulk Two " + uuid.New().String(), Department: "People", Location: "NYC", Type: "Full-time", Description: "y"},
		})
		if err != nil {
			t.Fatalf("InsertJobListings failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Inserted %d listings, want 2", count)
		}
		t.Cleanup(func() {
			_, _ = store.jobs().DeleteMany(ctx, bson.M{"title": bson.M{"$regex": "^Bulk "}})
		})

		// Imported listings rarely carry every list field; they still have
		// to round-trip as empty arrays, same as created ones.
		listed, err := store.ListJobListings(ctx, JobFilters{Status: JobStatusDraft, Department: "People"})
		if err != nil {
			t.Fatalf("ListJobListings failed: %v", err)
		}
		for _, job := range listed {
			if !strings.HasPrefix(job.Title, "Bulk ") {
				continue
			}
			if job.Requirements == nil || job.Responsibilities == nil || job.Benefits == nil {
				t.Errorf("Bulk-inserted listing has nil list fields: %+v", job)
			}
		}
	})
}

func TestIntegration_Interview_Lifecycle(t *testing.T) {
	store := getTestStore(t)
	ctx := context.Background()
	defer store.Close(ctx)

	applicationID := uuid.New().String()
	interview, err := store.CreateInterview(ctx, &Interview{
		ApplicationID: applicationID,
		CandidateID:   uuid.New().String(),
		Interviewers:  []string{"sam@example.com"},
		ScheduledFor:  time.Now().Add(48 * time.Hour).UTC(),
		Duration:      60,
		Type:          "Video",
	})
	if err != nil {
		t.Fatalf("CreateInterview failed: %v", err)
	}
	t.Cleanup(func() {
		_, _ = store.DeleteInterview(ctx, interview.ID.Hex())
	})

	if interview.Status != InterviewStatusScheduled {
		t.Errorf("Default status = %q, want Scheduled", interview.Status)
	}
	if interview.Feedback == nil {
		t.Error("Feedback should be normalized to empty, not nil")
	}

	listed, err := store.ListInterviews(ctx, InterviewFilters{ApplicationID: applicationID})
	if err != nil {
		t.Fatalf("ListInterviews failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("Expected one interview for application, got %d", len(listed))
	}

	updated, err := store.UpdateInterview(ctx, interview.ID.Hex(), bson.M{
		"status": InterviewStatusCompleted,
	})
	if err != nil {
		t.Fatalf("UpdateInterview failed: %v", err)
	}
	if updated.Status != InterviewStatusCompleted {
		t.Errorf("Status = %q, want Completed", updated.Status)
	}

	withFeedback, err := store.AddInterviewFeedback(ctx, interview.ID.Hex(), Feedback{
		Interviewer: "sam@example.com",
		Rating:      4,
		Comments:    "Strong systems answers.",
	})
	if err != nil {
		t.Fatalf("AddInterviewFeedback failed: %v", err)
	}
	if len(withFeedback.Feedback) != 1 {
		t.Fatalf("Expected one feedback entry, got %d", len(withFeedback.Feedback))
	}
	if withFeedback.Feedback[0].SubmittedAt.IsZero() {
		t.Error("SubmittedAt should be stamped on append")
	}

	count, err := store.CountInterviews(ctx, InterviewFilters{ApplicationID: applicationID, Status: InterviewStatusCompleted})
	if err != nil {
		t.Fatalf("CountInterviews failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}
