package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/ports"
)

const propertyCollection = "properties"

// PropertyRepository persists listings. Documents are stored straight from
// the domain struct; IDs are hex ObjectIDs generated at insert time.
type PropertyRepository struct {
	coll *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{coll: db.Collection(propertyCollection)}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	prop := *p
	prop.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, prop); err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}
	return &prop, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var prop domain.Property
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&prop); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return &prop, nil
}

// Search translates the filter into a Mongo query. Zero-valued fields are
// not constrained.
func (r *PropertyRepository) Search(ctx context.Context, filter ports.PropertySearchFilter) ([]*domain.Property, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.City != "" {
		query["city"] = filter.City
	}

	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}
	if filter.MinBedrooms > 0 {
		query["bedrooms"] = bson.M{"$gte": filter.MinBedrooms}
	}
	if filter.MinBathrooms > 0 {
		query["bathrooms"] = bson.M{"$gte": filter.MinBathrooms}
	}

	return r.find(ctx, query)
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*domain.Property, error) {
	return r.find(ctx, bson.M{})
}

func (r *PropertyRepository) find(ctx context.Context, query bson.M) ([]*domain.Property, error) {
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]*domain.Property, 0)
	for cursor.Next(ctx) {
		var prop domain.Property
		if err := cursor.Decode(&prop); err != nil {
			return nil, fmt.Errorf("decode property: %w", err)
		}
		out = append(out, &prop)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}
	return out, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) AppendImageRefs(ctx context.Context, id string, refs []string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"image_refs": bson.M{"$each": refs}},
	})
	if err != nil {
		return fmt.Errorf("append image refs: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}
