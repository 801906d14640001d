package dealer

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
	return &MongoStore{collection: db.Collection("dealers")}
}

type dealerDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Dealer `bson:",inline"`
}

func (d dealerDoc) toDealer() Dealer {
	out := d.Dealer
	out.ID = d.ID.Hex()
	return out
}

func (s *MongoStore) Insert(ctx context.Context, d Dealer) (Dealer, error) {
	res, err := s.collection.InsertOne(ctx, dealerDoc{Dealer: d})
	if err != nil {
		return Dealer{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert dealer")
	}
	d.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return d, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Dealer, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list dealers")
	}
	defer cursor.Close(ctx)

	var docs []dealerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode dealers")
	}
	out := make([]Dealer, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDealer())
	}
	return out, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (Dealer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Dealer{}, storage.ErrNotFound
	}
	var doc dealerDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Dealer{}, storage.ErrNotFound
	}
	if err != nil {
		return Dealer{}, dErrors.Wrap(err, dErrors.CodeInternal, "find dealer")
	}
	return doc.toDealer(), nil
}
