package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"motorvault/internal/auth/models"
	"motorvault/internal/storage"
	dErrors "motorvault/pkg/domain-errors"
)

// MongoUserStore persists users in the "users" collection. Email and
// member_id carry unique indexes; the duplicate-key error from a racing
// insert is mapped to storage.ErrDuplicate so the service sees one failure
// kind for both the pre-check and the index.
type MongoUserStore struct {
	collection *mongo.Collection
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	FullName     string             `bson:"full_name"`
	Phone        string             `bson:"phone"`
	MemberID     string             `bson:"member_id"`
	PIN          string             `bson:"pin"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{collection: db.Collection("users")}
}

// EnsureIndexes creates the uniqueness constraints registration depends on.
// Called once at startup.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "member_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (s *MongoUserStore) Insert(ctx context.Context, user models.User) (models.User, error) {
	doc := userDoc{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FullName:     user.FullName,
		Phone:        user.Phone,
		MemberID:     user.MemberID,
		PIN:          user.PIN,
		CreatedAt:    user.CreatedAt,
	}
	res, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, storage.ErrDuplicate
		}
		return models.User{}, dErrors.Wrap(err, dErrors.CodeInternal, "insert user")
	}
	user.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, storage.ErrNotFound
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var doc userDoc
	err := s.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, storage.ErrNotFound
	}
	if err != nil {
		return models.User{}, dErrors.Wrap(err, dErrors.CodeInternal, "find user")
	}
	return models.User{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		FullName:     doc.FullName,
		Phone:        doc.Phone,
		MemberID:     doc.MemberID,
		PIN:          doc.PIN,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (s *MongoUserStore) Update(ctx context.Context, id string, patch models.UserPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}

	set := bson.M{}
	if patch.FullName != nil {
		set["full_name"] = *patch.FullName
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.PasswordHash != nil {
		set["password"] = *patch.PasswordHash
	}
	if len(set) == 0 {
		return nil
	}

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "update user")
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
