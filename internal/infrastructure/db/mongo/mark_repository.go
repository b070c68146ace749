package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/academix/school-system/internal/core/domain"
)

const marksCollection = "marks"

type MarkRepository struct {
	coll *mongo.Collection
}

func NewMarkRepository(db *mongo.Database) *MarkRepository {
	return &MarkRepository{coll: db.Collection(marksCollection)}
}

type mongoMark struct {
	StudentID  string `bson:"student_id"`
	Subject    string `bson:"subject"`
	Score      int64  `bson:"score"`
	MaxScore   int64  `bson:"max_score"`
	SemesterID int64  `bson:"semester_id"`
}

func (r *MarkRepository) Insert(ctx context.Context, m domain.Mark) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toMongoMark(m)); err != nil {
		return fmt.Errorf("insert mark: %w", err)
	}
	return nil
}

// Update rewrites the score of the marks matching (student, subject,
// semester). A zero-match update is not an error; the caller chose update
// over add deliberately.
func (r *MarkRepository) Update(ctx context.Context, m domain.Mark) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"student_id":  m.StudentID,
		"subject":     m.Subject,
		"semester_id": m.SemesterID,
	}
	update := bson.M{"$set": bson.M{"score": m.Score, "max_score": m.MaxScore}}
	if _, err := r.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("update mark: %w", err)
	}
	return nil
}

func (r *MarkRepository) ListAll(ctx context.Context) ([]domain.Mark, error) {
	return r.list(ctx, bson.M{})
}

func (r *MarkRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Mark, error) {
	return r.list(ctx, bson.M{"student_id": studentID})
}

func (r *MarkRepository) list(ctx context.Context, filter bson.M) ([]domain.Mark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}
	var docs []mongoMark
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode marks: %w", err)
	}

	marks := make([]domain.Mark, 0, len(docs))
	for _, d := range docs {
		marks = append(marks, domain.Mark{
			StudentID:  d.StudentID,
			Subject:    d.Subject,
			Score:      d.Score,
			MaxScore:   d.MaxScore,
			SemesterID: d.SemesterID,
		})
	}
	return marks, nil
}

func toMongoMark(m domain.Mark) mongoMark {
	return mongoMark{
		StudentID:  m.StudentID,
		Subject:    m.Subject,
		Score:      m.Score,
		MaxScore:   m.MaxScore,
		SemesterID: m.SemesterID,
	}
}
