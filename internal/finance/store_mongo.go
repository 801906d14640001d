package finance

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
	return &MongoStore{collection: db.Collection("finance_products")}
}

type productDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Product `bson:",inline"`
}

func (d productDoc) toProduct() Product {
	p := d.Product
	p.ID = d.ID.Hex()
	return p
}

func (s *MongoStore) Insert(ctx context.Context, p Product) (Product, error) {
	res, err := s.collection.InsertOne(ctx, productDoc{Product: p})
	if err != nil {
		return Product{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert finance product")
	}
	p.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return p, nil
}

func (s *MongoStore) ListByOwner(ctx context.Context, userID string) ([]Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list finance products")
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode finance products")
	}
	out := make([]Product, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toProduct())
	}
	return out, nil
}

func (s *MongoStore) FindByOwner(ctx context.Context, id, userID string) (Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Product{}, storage.ErrNotFound
	}
	var doc productDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Product{}, storage.ErrNotFound
	}
	if err != nil {
		return Product{}, dErrors.Wrap(err, dErrors.CodeInternal, "find finance product")
	}
	return doc.toProduct(), nil
}

func (s *MongoStore) Update(ctx context.Context, id, userID string, req UpdateRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}

	set := bson.M{}
	storage.SetIf(set, "vehicle_id", req.VehicleID)
	storage.SetIf(set, "lender", req.Lender)
	storage.SetIf(set, "product_type", req.ProductType)
	storage.SetIf(set, "loan_amount", req.LoanAmount)
	storage.SetIf(set, "outstanding_balance", req.OutstandingBalance)
	storage.SetIf(set, "interest_rate", req.InterestRate)
	storage.SetIf(set, "monthly_payment", req.MonthlyPayment)
	storage.SetIf(set, "start_date", req.StartDate)
	storage.SetIf(set, "end_date", req.EndDate)

	return storage.UpdateOwned(ctx, s.collection, oid, userID, set)
}

func (s *MongoStore) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}
	return storage.DeleteOwned(ctx, s.collection, oid, userID)
}
