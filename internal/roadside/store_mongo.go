package roadside

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
	return &MongoStore{collection: db.Collection("roadside_assistance")}
}

type membershipDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Membership `bson:",inline"`
}

func (d membershipDoc) toMembership() Membership {
	m := d.Membership
	m.ID = d.ID.Hex()
	return m
}

func (s *MongoStore) Insert(ctx context.Context, m Membership) (Membership, error) {
	res, err := s.collection.InsertOne(ctx, membershipDoc{Membership: m})
	if err != nil {
		return Membership{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert membership")
	}
	m.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return m, nil
}

func (s *MongoStore) ListByOwner(ctx context.Context, userID string) ([]Membership, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list memberships")
	}
	defer cursor.Close(ctx)

	var docs []membershipDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode memberships")
	}
	out := make([]Membership, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toMembership())
	}
	return out, nil
}

func (s *MongoStore) FindByOwner(ctx context.Context, id, userID string) (Membership, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Membership{}, storage.ErrNotFound
	}
	var doc membershipDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Membership{}, storage.ErrNotFound
	}
	if err != nil {
		return Membership{}, dErrors.Wrap(err, dErrors.CodeInternal, "find membership")
	}
	return doc.toMembership(), nil
}

func (s *MongoStore) Update(ctx context.Context, id, userID string, req UpdateRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}

	set := bson.M{}
	storage.SetIf(set, "vehicle_id", req.VehicleID)
	storage.SetIf(set, "provider", req.Provider)
	storage.SetIf(set, "membership_number", req.MembershipNumber)
	storage.SetIf(set, "plan_type", req.PlanType)
	storage.SetIf(set, "start_date", req.StartDate)
	storage.SetIf(set, "end_date", req.EndDate)
	storage.SetIf(set, "price", req.Price)

	return storage.UpdateOwned(ctx, s.collection, oid, userID, set)
}

func (s *MongoStore) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}
	return storage.DeleteOwned(ctx, s.collection, oid, userID)
}
