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

// InterviewFilters holds the optional filters for listing interviews.
type InterviewFilters struct {
	ApplicationID string
	CandidateID   string
	Status        string
}

func (f InterviewFilters) query() bson.M {
	query := bson.M{}
	if f.ApplicationID != "" {
		query["applicationId"] = f.ApplicationID
	}
	if f.CandidateID != "" {
		query["candidateId"] = f.CandidateID
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	return query
}

// CreateInterview schedules an interview and returns it with its assigned id.
func (s *Store) CreateInterview(ctx context.Context, interview *Interview) (*Interview, error) {
	now := time.Now().UTC()
	interview.ID = primitive.NewObjectID()
	interview.CreatedAt = now
	interview.UpdatedAt = now
	if interview.Status == "" {
		interview.Status = InterviewStatusScheduled
	}
	if interview.Feedback == nil {
		interview.Feedback = []Feedback{}
	}
	if interview.Interviewers == nil {
		interview.Interviewers = []string{}
	}

	if _, err := s.interviews().InsertOne(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return interview, nil
}

// GetInterview retrieves an interview by id. Returns nil when the id is
// malformed or no interview matches.
func (s *Store) GetInterview(ctx context.Context, id string) (*Interview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var interview Interview
	err = s.interviews().FindOne(ctx, bson.M{"_id": oid}).Decode(&interview)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return &interview, nil
}

// ListInterviews retrieves interviews matching the filters, soonest first.
func (s *Store) ListInterviews(ctx context.Context, filters InterviewFilters) ([]Interview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduledFor", Value: 1}})
	cursor, err := s.interviews().Find(ctx, filters.query(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer cursor.Close(ctx)

	interviews := []Interview{}
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, fmt.Errorf("failed to decode interviews: %w", err)
	}
	return interviews, nil
}

// UpdateInterview applies the given field updates and returns the updated
// document. Returns nil when no interview matches.
func (s *Store) UpdateInterview(ctx context.Context, id string, updates bson.M) (*Interview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	updates["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var interview Interview
	err = s.interviews().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&interview)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}
	return &interview, nil
}

// AddInterviewFeedback appends one interviewer's feedback to an interview.
func (s *Store) AddInterviewFeedback(ctx context.Context, id string, feedback Feedback) (*Interview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	feedback.SubmittedAt = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var interview Interview
	err = s.interviews().FindOneAndUpdate(ctx, bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"feedback": feedback},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		}, opts).Decode(&interview)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to add interview feedback: %w", err)
	}
	return &interview, nil
}

// DeleteInterview removes an interview. Reports whether a document was
// deleted.
func (s *Store) DeleteInterview(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := s.interviews().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete interview: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// CountInterviews reports the number of interviews matching the filters.
func (s *Store) CountInterviews(ctx context.Context, filters InterviewFilters) (int64, error) {
	count, err := s.interviews().CountDocuments(ctx, filters.query())
	if err != nil {
		return 0, fmt.Errorf("failed to count interviews: %w", err)
	}
	return count, nil
}
