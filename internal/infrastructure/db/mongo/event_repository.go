package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/academix/school-system/internal/core/domain"
)

const eventsCollection = "events"

type EventRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{db: db, coll: db.Collection(eventsCollection)}
}

type mongoEvent struct {
	ID          int64  `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Date        int64  `bson:"date"`
}

// Insert assigns the next sequential event id and persists the document.
func (r *EventRepository) Insert(ctx context.Context, e *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, eventsCollection)
	if err != nil {
		return err
	}

	doc := mongoEvent{
		ID:          id,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.UnixNano(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	e.ID = id
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       e.Title,
		"description": e.Description,
		"date":        e.Date.UnixNano(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": e.ID}, update)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	var docs []mongoEvent
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]domain.Event, 0, len(docs))
	for _, d := range docs {
		events = append(events, domain.Event{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Date:        nanosToTime(d.Date),
		})
	}
	return events, nil
}
