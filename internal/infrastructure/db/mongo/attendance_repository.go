package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/academix/school-system/internal/core/domain"
)

const attendanceCollection = "attendance"

type AttendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{coll: db.Collection(attendanceCollection)}
}

type mongoAttendance struct {
	StudentID string `bson:"student_id"`
	Date      int64  `bson:"date"`
	Status    string `bson:"status"`
}

func (r *AttendanceRepository) Insert(ctx context.Context, a domain.Attendance) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAttendance{
		StudentID: a.StudentID,
		Date:      a.Date.UnixNano(),
		Status:    string(a.Status),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// Update rewrites the status of the records matching (student, day). No
// uniqueness is enforced on that pair, so a zero-match update is not an
// error.
func (r *AttendanceRepository) Update(ctx context.Context, a domain.Attendance) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"student_id": a.StudentID, "date": a.Date.UnixNano()}
	update := bson.M{"$set": bson.M{"status": string(a.Status)}}
	if _, err := r.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) ListAll(ctx context.Context) ([]domain.Attendance, error) {
	return r.list(ctx, bson.M{})
}

func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Attendance, error) {
	return r.list(ctx, bson.M{"student_id": studentID})
}

func (r *AttendanceRepository) list(ctx context.Context, filter bson.M) ([]domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	var docs []mongoAttendance
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}

	records := make([]domain.Attendance, 0, len(docs))
	for _, d := range docs {
		records = append(records, domain.Attendance{
			StudentID: d.StudentID,
			Date:      nanosToTime(d.Date),
			Status:    domain.AttendanceStatus(d.Status),
		})
	}
	return records, nil
}
