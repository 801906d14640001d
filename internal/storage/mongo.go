package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	dErrors "motorvault/pkg/domain-errors"
)

// SetIf adds a $set entry only for fields present in the request, giving
// every owned entity the same partial-update semantics: absent and explicit
// null both leave the stored value untouched.
func SetIf[T any](set bson.M, key string, value *T) {
	if value != nil {
		set[key] = *value
	}
}

// UpdateOwned applies a $set to a record only when both ID and owner match,
// so a foreign-owner update fails exactly like a missing record.
func UpdateOwned(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, userID string, set bson.M) error {
	if len(set) == 0 {
		// Nothing to apply, but still verify the record exists and is
		// owned by the caller.
		err := c.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "check record")
		}
		return nil
	}
	res, err := c.UpdateOne(ctx, bson.M{"_id": id, "user_id": userID}, bson.M{"$set": set})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "update record")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOwned removes a record only when both ID and owner match.
func DeleteOwned(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, userID string) error {
	res, err := c.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "delete record")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
