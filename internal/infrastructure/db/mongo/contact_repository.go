package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/casavia/realty-system/internal/core/domain"
)

const contactCollection = "contact_messages"

// ContactRepository persists public contact form submissions.
type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactCollection)}
}

func (r *ContactRepository) Insert(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	msg := *m
	msg.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return &msg, nil
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]*domain.ContactMessage, 0)
	for cursor.Next(ctx) {
		var msg domain.ContactMessage
		if err := cursor.Decode(&msg); err != nil {
			return nil, fmt.Errorf("decode contact message: %w", err)
		}
		out = append(out, &msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return out, nil
}

func (r *ContactRepository) MarkRead(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}
