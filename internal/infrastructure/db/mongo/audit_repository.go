package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/academix/school-system/internal/core/domain"
)

const auditCollection = "audit_log"

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	Actor    string `bson:"actor"`
	Role     string `bson:"role"`
	Action   string `bson:"action"`
	Resource string `bson:"resource"`
	Detail   string `bson:"detail,omitempty"`
	At       int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, e *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAuditEntry{
		Actor:    e.Actor,
		Role:     e.Role,
		Action:   e.Action,
		Resource: e.Resource,
		Detail:   e.Detail,
		At:       e.At.UnixNano(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
