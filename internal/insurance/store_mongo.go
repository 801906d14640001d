package insurance

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
	return &MongoStore{collection: db.Collection("insurance_policies")}
}

type policyDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Policy `bson:",inline"`
}

func (d policyDoc) toPolicy() Policy {
	p := d.Policy
	p.ID = d.ID.Hex()
	return p
}

func (s *MongoStore) Insert(ctx context.Context, p Policy) (Policy, error) {
	res, err := s.collection.InsertOne(ctx, policyDoc{Policy: p})
	if err != nil {
		return Policy{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert policy")
	}
	p.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return p, nil
}

func (s *MongoStore) ListByOwner(ctx context.Context, userID string) ([]Policy, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list policies")
	}
	defer cursor.Close(ctx)

	var docs []policyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode policies")
	}
	out := make([]Policy, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toPolicy())
	}
	return out, nil
}

func (s *MongoStore) FindByOwner(ctx context.Context, id, userID string) (Policy, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Policy{}, storage.ErrNotFound
	}
	var doc policyDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Policy{}, storage.ErrNotFound
	}
	if err != nil {
		return Policy{}, dErrors.Wrap(err, dErrors.CodeInternal, "find policy")
	}
	return doc.toPolicy(), nil
}

func (s *MongoStore) Update(ctx context.Context, id, userID string, req UpdateRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}

	set := bson.M{}
	storage.SetIf(set, "vehicle_id", req.VehicleID)
	storage.SetIf(set, "provider", req.Provider)
	storage.SetIf(set, "policy_number", req.PolicyNumber)
	storage.SetIf(set, "policy_type", req.PolicyType)
	storage.SetIf(set, "start_date", req.StartDate)
	storage.SetIf(set, "end_date", req.EndDate)
	storage.SetIf(set, "premium", req.Premium)
	storage.SetIf(set, "excess", req.Excess)
	storage.SetIf(set, "coverage_amount", req.CoverageAmount)

	return storage.UpdateOwned(ctx, s.collection, oid, userID, set)
}

func (s *MongoStore) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}
	return storage.DeleteOwned(ctx, s.collection, oid, userID)
}
