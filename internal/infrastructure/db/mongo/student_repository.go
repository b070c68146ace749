package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/academix/school-system/internal/core/domain"
)

const studentsCollection = "students"

type StudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(studentsCollection)}
}

type mongoStudent struct {
	ID           string `bson:"_id"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
	Name         string `bson:"name"`
	CreatedAt    int64  `bson:"created_at"`
}

func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoStudent{
		ID:           s.ID,
		Username:     s.Username,
		PasswordHash: s.PasswordHash,
		Name:         s.Name,
		CreatedAt:    s.CreatedAt.UnixNano(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrStudentExists
		}
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *StudentRepository) FindByUsername(ctx context.Context, username string) (*domain.Student, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *StudentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoStudent
	if err := r.coll.FindOne(ctx, filter).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	s := toStudent(ms)
	return &s, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	var docs []mongoStudent
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}

	students := make([]domain.Student, 0, len(docs))
	for _, d := range docs {
		students = append(students, toStudent(d))
	}
	return students, nil
}

func toStudent(m mongoStudent) domain.Student {
	return domain.Student{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		CreatedAt:    nanosToTime(m.CreatedAt),
	}
}
