package marketplace

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
	return &MongoStore{collection: db.Collection("marketplace_listings")}
}

type listingDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Listing `bson:",inline"`
}

func (d listingDoc) toListing() Listing {
	l := d.Listing
	l.ID = d.ID.Hex()
	return l
}

func (s *MongoStore) Insert(ctx context.Context, l Listing) (Listing, error) {
	res, err := s.collection.InsertOne(ctx, listingDoc{Listing: l})
	if err != nil {
		return Listing{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert listing")
	}
	l.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return l, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Listing, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list listings")
	}
	defer cursor.Close(ctx)

	var docs []listingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode listings")
	}
	out := make([]Listing, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toListing())
	}
	return out, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Listing{}, storage.ErrNotFound
	}
	var doc listingDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Listing{}, storage.ErrNotFound
	}
	if err != nil {
		return Listing{}, dErrors.Wrap(err, dErrors.CodeInternal, "find listing")
	}
	return doc.toListing(), nil
}
