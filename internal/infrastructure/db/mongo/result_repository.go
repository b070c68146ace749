package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/academix/school-system/internal/core/domain"
)

const resultsCollection = "exam_results"

type ResultRepository struct {
	coll *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{coll: db.Collection(resultsCollection)}
}

type mongoResult struct {
	StudentID  string `bson:"student_id"`
	SemesterID int64  `bson:"semester_id"`
	Subject    string `bson:"subject"`
	Score      int64  `bson:"score"`
	MaxScore   int64  `bson:"max_score"`
}

func (r *ResultRepository) Insert(ctx context.Context, res domain.SemesterExamResult) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoResult{
		StudentID:  res.StudentID,
		SemesterID: res.SemesterID,
		Subject:    res.Subject,
		Score:      res.Score,
		MaxScore:   res.MaxScore,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert exam result: %w", err)
	}
	return nil
}

func (r *ResultRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.SemesterExamResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, fmt.Errorf("list exam results: %w", err)
	}
	var docs []mongoResult
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode exam results: %w", err)
	}

	results := make([]domain.SemesterExamResult, 0, len(docs))
	for _, d := range docs {
		results = append(results, domain.SemesterExamResult{
			StudentID:  d.StudentID,
			SemesterID: d.SemesterID,
			Subject:    d.Subject,
			Score:      d.Score,
			MaxScore:   d.MaxScore,
		})
	}
	return results, nil
}
