package provider

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	dErrors "motorvault/pkg/domain-errors"
)

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection("providers")}
}

type providerDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Provider `bson:",inline"`
}

func (s *MongoStore) Insert(ctx context.Context, p Provider) (Provider, error) {
	res, err := s.collection.InsertOne(ctx, providerDoc{Provider: p})
	if err != nil {
		return Provider{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert provider")
	}
	p.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return p, nil
}

func (s *MongoStore) List(ctx context.Context, providerType string) ([]Provider, error) {
	filter := bson.M{}
	if providerType != "" {
		filter["provider_type"] = providerType
	}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list providers")
	}
	defer cursor.Close(ctx)

	var docs []providerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode providers")
	}
	out := make([]Provider, 0, len(docs))
	for _, doc := range docs {
		p := doc.Provider
		p.ID = doc.ID.Hex()
		out = append(out, p)
	}
	return out, nil
}
