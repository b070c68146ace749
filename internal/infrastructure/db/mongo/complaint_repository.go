package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/academix/school-system/internal/core/domain"
)

const complaintsCollection = "complaints"

type ComplaintRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{db: db, coll: db.Collection(complaintsCollection)}
}

type mongoComplaint struct {
	ID        int64  `bson:"_id"`
	StudentID string `bson:"student_id"`
	Message   string `bson:"message"`
	Timestamp int64  `bson:"timestamp"`
}

// Insert assigns the next sequential complaint id and persists the document.
func (r *ComplaintRepository) Insert(ctx context.Context, c *domain.Complaint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, complaintsCollection)
	if err != nil {
		return err
	}

	doc := mongoComplaint{
		ID:        id,
		StudentID: c.StudentID,
		Message:   c.Message,
		Timestamp: c.Timestamp.UnixNano(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	c.ID = id
	return nil
}

func (r *ComplaintRepository) List(ctx context.Context) ([]domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	var docs []mongoComplaint
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode complaints: %w", err)
	}

	complaints := make([]domain.Complaint, 0, len(docs))
	for _, d := range docs {
		complaints = append(complaints, domain.Complaint{
			ID:        d.ID,
			StudentID: d.StudentID,
			Message:   d.Message,
			Timestamp: nanosToTime(d.Timestamp),
		})
	}
	return complaints, nil
}
