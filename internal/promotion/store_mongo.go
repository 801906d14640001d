package promotion

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
	return &MongoStore{collection: db.Collection("promotions")}
}

type promotionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Promotion `bson:",inline"`
}

func (d promotionDoc) toPromotion() Promotion {
	p := d.Promotion
	p.ID = d.ID.Hex()
	return p
}

func (s *MongoStore) Insert(ctx context.Context, p Promotion) (Promotion, error) {
	res, err := s.collection.InsertOne(ctx, promotionDoc{Promotion: p})
	if err != nil {
		return Promotion{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert promotion")
	}
	p.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return p, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Promotion, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list promotions")
	}
	defer cursor.Close(ctx)

	var docs []promotionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode promotions")
	}
	out := make([]Promotion, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toPromotion())
	}
	return out, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (Promotion, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Promotion{}, storage.ErrNotFound
	}
	var doc promotionDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Promotion{}, storage.ErrNotFound
	}
	if err != nil {
		return Promotion{}, dErrors.Wrap(err, dErrors.CodeInternal, "find promotion")
	}
	return doc.toPromotion(), nil
}
