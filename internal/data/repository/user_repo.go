package repository

import (
	"context"
	"fmt"

	"lupang-store/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type UserRepository interface {
	Put(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Scan(ctx context.Context) ([]*entity.User, error)
}

type userRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewUserRepository(col *mongo.Collection, log *zap.Logger) UserRepository {
	return &userRepository{
		col: col,
		log: log,
	}
}

// Put writes a user record keyed by UserID. An existing record with the
// same UserID is replaced: registration is last-write-wins, with no
// duplicate check.
func (ur *userRepository) Put(ctx context.Context, user *entity.User) error {
	opts := options.Replace().SetUpsert(true)

	_, err := ur.col.ReplaceOne(ctx, bson.M{"_id": user.UserID}, user, opts)
	if err != nil {
		ur.log.Error("Failed to put user",
			zap.Error(err),
			zap.String("user_id", user.UserID),
		)
		return fmt.Errorf("put user %s: %w", user.UserID, err)
	}

	return nil
}

// FindByEmail is a point lookup on the email field. Returns (nil, nil)
// when no user matches. Comparison is exact and case-sensitive.
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := ur.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

// Scan loads the full users collection.
func (ur *userRepository) Scan(ctx context.Context) ([]*entity.User, error) {
	cursor, err := ur.col.Find(ctx, bson.M{})
	if err != nil {
		ur.log.Error("Failed to scan users", zap.Error(err))
		return nil, fmt.Errorf("scan users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		ur.log.Error("Failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}
