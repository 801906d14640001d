package vehicle

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"motorvault/internal/storage"
	dErrors "motorvault/pkg/domain-errors"
)

// MongoStore persists vehicles in the "vehicles" collection. The document ID
// is Mongo's ObjectID, exposed to the rest of the system in hex form.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection("vehicles")}
}

type vehicleDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Vehicle `bson:",inline"`
}

func (s *MongoStore) Insert(ctx context.Context, v Vehicle) (Vehicle, error) {
	res, err := s.collection.InsertOne(ctx, vehicleDoc{Vehicle: v})
	if err != nil {
		return Vehicle{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert vehicle")
	}
	v.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return v, nil
}

func (s *MongoStore) ListByOwner(ctx context.Context, userID string) ([]Vehicle, error) {
	return s.list(ctx, bson.M{"user_id": userID}, 100)
}

func (s *MongoStore) FindByOwner(ctx context.Context, id, userID string) (Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Vehicle{}, storage.ErrNotFound
	}
	var doc vehicleDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Vehicle{}, storage.ErrNotFound
	}
	if err != nil {
		return Vehicle{}, dErrors.Wrap(err, dErrors.CodeInternal, "find vehicle")
	}
	return doc.toVehicle(), nil
}

func (s *MongoStore) Update(ctx context.Context, id, userID string, req UpdateRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}

	set := bson.M{}
	storage.SetIf(set, "rego", req.Rego)
	storage.SetIf(set, "vin", req.VIN)
	storage.SetIf(set, "make", req.Make)
	storage.SetIf(set, "model", req.Model)
	storage.SetIf(set, "year", req.Year)
	storage.SetIf(set, "body_type", req.BodyType)
	storage.SetIf(set, "color", req.Color)
	storage.SetIf(set, "odometer", req.Odometer)
	storage.SetIf(set, "image", req.Image)
	storage.SetIf(set, "purchase_date", req.PurchaseDate)
	storage.SetIf(set, "purchase_price", req.PurchasePrice)
	storage.SetIf(set, "dealer_id", req.DealerID)

	return storage.UpdateOwned(ctx, s.collection, oid, userID, set)
}

func (s *MongoStore) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}
	return storage.DeleteOwned(ctx, s.collection, oid, userID)
}

func (s *MongoStore) CountByOwner(ctx context.Context, userID string) (int64, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "count vehicles")
	}
	return n, nil
}

func (s *MongoStore) ListAll(ctx context.Context, limit int64) ([]Vehicle, error) {
	return s.list(ctx, bson.M{}, limit)
}

func (s *MongoStore) list(ctx context.Context, filter bson.M, limit int64) ([]Vehicle, error) {
	cursor, err := s.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list vehicles")
	}
	defer cursor.Close(ctx)

	var docs []vehicleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode vehicles")
	}
	out := make([]Vehicle, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toVehicle())
	}
	return out, nil
}

func (d vehicleDoc) toVehicle() Vehicle {
	v := d.Vehicle
	v.ID = d.ID.Hex()
	return v
}
