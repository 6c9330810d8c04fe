package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/casavia/realty-system/internal/core/domain"
)

const bookingCollection = "bookings"

// BookingRepository persists visit bookings. Status transitions are applied
// as a compare-and-swap on the current status, so two concurrent updates
// cannot both win.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	booking := *b
	booking.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{"customer_id": customerID})
}

func (r *BookingRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{"property_owner_id": ownerID})
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *BookingRepository) find(ctx context.Context, query bson.M) ([]*domain.Booking, error) {
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]*domain.Booking, 0)
	for cursor.Next(ctx) {
		var booking domain.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		out = append(out, &booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return out, nil
}

// UpdateStatus atomically moves a booking from one status to another. The
// filter includes the expected current status; when another writer got there
// first the document no longer matches and the transition fails.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus, customerNotes, ownerNotes string) (*domain.Booking, error) {
	set := bson.M{
		"status":     to,
		"updated_at": time.Now().UTC(),
	}
	if customerNotes != "" {
		set["customer_notes"] = customerNotes
	}
	if ownerNotes != "" {
		set["owner_notes"] = ownerNotes
	}

	var booking domain.Booking
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Either the booking is gone or its status moved underneath us.
			if _, findErr := r.FindByID(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrInvalidTransition
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"payment_status": status, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	return &booking, nil
}
