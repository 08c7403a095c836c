package repository

import (
	"context"
	"time"

	"student-feedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type feedbackDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	StudentName string        `bson:"student_name"`
	Comment     string        `bson:"comment"`
	Rating      int           `bson:"rating"`
	CreatedAt   time.Time     `bson:"created_at"`
	CreatedBy   string        `bson:"created_by,omitempty"`
}

func (d *feedbackDoc) toModel() models.Feedback {
	return models.Feedback{
		ID:          d.ID.Hex(),
		StudentName: d.StudentName,
		Comment:     d.Comment,
		Rating:      d.Rating,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

type MongoFeedbackRepo struct {
	collection *mongo.Collection
}

func NewMongoFeedbackRepo(db *mongo.Database) *MongoFeedbackRepo {
	return &MongoFeedbackRepo{
		collection: db.Collection("feedbacks"),
	}
}

func (r *MongoFeedbackRepo) Insert(ctx context.Context, feedback *models.Feedback) error {
	feedback.CreatedAt = time.Now()
	doc := feedbackDoc{
		StudentName: feedback.StudentName,
		Comment:     feedback.Comment,
		Rating:      feedback.Rating,
		CreatedAt:   feedback.CreatedAt,
		CreatedBy:   feedback.CreatedBy,
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	feedback.ID = result.InsertedID.(bson.ObjectID).Hex()
	return nil
}

// ListAll returns every feedback record in the engine's natural order.
func (r *MongoFeedbackRepo) ListAll(ctx context.Context) ([]models.Feedback, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []feedbackDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	feedbacks := make([]models.Feedback, 0, len(docs))
	for i := range docs {
		feedbacks = append(feedbacks, docs[i].toModel())
	}
	return feedbacks, nil
}

func (r *MongoFeedbackRepo) Delete(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
