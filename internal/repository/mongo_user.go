package repository

import (
	"context"
	"time"

	"student-feedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Username     string        `bson:"username"`
	PasswordHash string        `bson:"password_hash"`
	Email        string        `bson:"email,omitempty"`
	CreatedAt    time.Time     `bson:"created_at"`
}

func (d *userDoc) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Email:        d.Email,
		CreatedAt:    d.CreatedAt,
	}
}

type MongoUserRepo struct {
	collection *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{
		collection: db.Collection("users"),
	}
}

func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	doc := userDoc{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Email:        user.Email,
		CreatedAt:    user.CreatedAt,
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		// Uniqueness is backed by the index from EnsureIndexes.
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	user.ID = result.InsertedID.(bson.ObjectID).Hex()
	return nil
}

func (r *MongoUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return doc.toModel(), nil
}

// EnsureIndexes creates necessary indexes for the users collection
func (r *MongoUserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
