package booking

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"motorvault/internal/storage"
	dErrors "motorvault/pkg/domain-errors"
)

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection("service_bookings")}
}

type bookingDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Booking `bson:",inline"`
}

func (d bookingDoc) toBooking() Booking {
	b := d.Booking
	b.ID = d.ID.Hex()
	return b
}

func (s *MongoStore) Insert(ctx context.Context, b Booking) (Booking, error) {
	res, err := s.collection.InsertOne(ctx, bookingDoc{Booking: b})
	if err != nil {
		return Booking{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert booking")
	}
	b.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return b, nil
}

func (s *MongoStore) ListByOwner(ctx context.Context, userID string) ([]Booking, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list bookings")
	}
	defer cursor.Close(ctx)

	var docs []bookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode bookings")
	}
	out := make([]Booking, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toBooking())
	}
	return out, nil
}

func (s *MongoStore) FindByOwner(ctx context.Context, id, userID string) (Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Booking{}, storage.ErrNotFound
	}
	var doc bookingDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Booking{}, storage.ErrNotFound
	}
	if err != nil {
		return Booking{}, dErrors.Wrap(err, dErrors.CodeInternal, "find booking")
	}
	return doc.toBooking(), nil
}

func (s *MongoStore) Update(ctx context.Context, id, userID string, req UpdateRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}

	set := bson.M{}
	storage.SetIf(set, "dealer_id", req.DealerID)
	storage.SetIf(set, "service_type", req.ServiceType)
	storage.SetIf(set, "booking_date", req.BookingDate)
	storage.SetIf(set, "notes", req.Notes)
	storage.SetIf(set, "status", req.Status)

	return storage.UpdateOwned(ctx, s.collection, oid, userID, set)
}

func (s *MongoStore) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}
	return storage.DeleteOwned(ctx, s.collection, oid, userID)
}
