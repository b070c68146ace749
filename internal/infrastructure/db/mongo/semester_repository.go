package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/academix/school-system/internal/core/domain"
)

const semestersCollection = "semesters"

type SemesterRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewSemesterRepository(db *mongo.Database) *SemesterRepository {
	return &SemesterRepository{db: db, coll: db.Collection(semestersCollection)}
}

type mongoSemester struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"name"`
	StartDate int64  `bson:"start_date"`
	EndDate   int64  `bson:"end_date"`
}

// Insert assigns the next sequential semester id and persists the document.
func (r *SemesterRepository) Insert(ctx context.Context, s *domain.Semester) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, semestersCollection)
	if err != nil {
		return err
	}

	doc := mongoSemester{
		ID:        id,
		Name:      s.Name,
		StartDate: s.StartDate.UnixNano(),
		EndDate:   s.EndDate.UnixNano(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert semester: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SemesterRepository) List(ctx context.Context) ([]domain.Semester, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list semesters: %w", err)
	}
	var docs []mongoSemester
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode semesters: %w", err)
	}

	semesters := make([]domain.Semester, 0, len(docs))
	for _, d := range docs {
		semesters = append(semesters, domain.Semester{
			ID:        d.ID,
			Name:      d.Name,
			StartDate: nanosToTime(d.StartDate),
			EndDate:   nanosToTime(d.EndDate),
		})
	}
	return semesters, nil
}
