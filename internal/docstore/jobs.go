package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JobFilters holds the optional filters for listing job postings. Zero
// values mean "any".
type JobFilters struct {
	Status     string
	Department string
	Location   string
	Type       string
	Featured   *bool
}

func (f JobFilters) query() bson.M {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Department != "" {
		query["department"] = f.Department
	}
	if f.Location != "" {
		query["location"] = f.Location
	}
	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.Featured != nil {
		query["featured"] = *f.Featured
	}
	return query
}

// CreateJobListing inserts a listing and returns it with its assigned id.
func (s *Store) CreateJobListing(ctx context.Context, job *JobListing) (*JobListing, error) {
	now := time.Now().UTC()
	job.ID = primitive.NewObjectID()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Status == "" {
		job.Status = JobStatusDraft
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Responsibilities == nil {
		job.Responsibilities = []string{}
	}
	if job.Benefits == nil {
		job.Benefits = []string{}
	}

	if _, err := s.jobs().InsertOne(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job listing: %w", err)
	}
	return job, nil
}

// GetJobListing retrieves a listing by id. Returns nil when the id is
// malformed or no listing matches.
func (s *Store) GetJobListing(ctx context.Context, id string) (*JobListing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var job JobListing
	err = s.jobs().FindOne(ctx, bson.M{"_id": oid}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job listing: %w", err)
	}
	return &job, nil
}

// ListJobListings retrieves listings matching the filters, newest first.
func (s *Store) ListJobListings(ctx context.Context, filters JobFilters) ([]JobListing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.jobs().Find(ctx, filters.query(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list job listings: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := []JobListing{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode job listings: %w", err)
	}
	return jobs, nil
}

// UpdateJobListing applies the given field updates to a listing and returns
// the updated document. Returns nil when no listing matches.
func (s *Store) UpdateJobListing(ctx context.Context, id string, updates bson.M) (*JobListing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	updates["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job JobListing
	err = s.jobs().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job listing: %w", err)
	}
	return &job, nil
}

// DeleteJobListing removes a listing. Reports whether a document was deleted.
func (s *Store) DeleteJobListing(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := s.jobs().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete job listing: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// InsertJobListings bulk-inserts listings, used by the import command.
func (s *Store) InsertJobListings(ctx context.Context, jobs []JobListing) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(jobs))
	for i := range jobs {
		jobs[i].ID = primitive.NewObjectID()
		jobs[i].CreatedAt = now
		jobs[i].UpdatedAt = now
		if jobs[i].Status == "" {
			jobs[i].Status = JobStatusDraft
		}
		if jobs[i].Requirements == nil {
			jobs[i].Requirements = []string{}
		}
		if jobs[i].Responsibilities == nil {
			jobs[i].Responsibilities = []string{}
		}
		if jobs[i].Benefits == nil {
			jobs[i].Benefits = []string{}
		}
		docs = append(docs, jobs[i])
	}

	result, err := s.jobs().InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert job listings: %w", err)
	}
	return len(result.InsertedIDs), nil
}

// CountJobListings reports the number of listings matching the filters.
func (s *Store) CountJobListings(ctx context.Context, filters JobFilters) (int64, error) {
	count, err := s.jobs().CountDocuments(ctx, filters.query())
	if err != nil {
		return 0, fmt.Errorf("failed to count job listings: %w", err)
	}
	return count, nil
}
