// File: database/repository/eventtype/crud.go
package eventtypeRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
)

func (r *mongoEventTypeRepo) Create(ctx context.Context, et *models.EventType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if et.ID == "" {
		et.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, et); err != nil {
		return fmt.Errorf("failed to create event type: %w", err)
	}
	return nil
}

func (r *mongoEventTypeRepo) Update(ctx context.Context, et *models.EventType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": et.ID, "mentorId": et.MentorID}
	res, err := r.coll.ReplaceOne(ctx, filter, et)
	if err != nil {
		return fmt.Errorf("failed to update event type: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventTypeRepo) Delete(ctx context.Context, mentorID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "mentorId": mentorID})
	if err != nil {
		return fmt.Errorf("failed to delete event type: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventTypeRepo) GetByID(ctx context.Context, mentorID, id string) (*models.EventType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var et models.EventType
	err := r.coll.FindOne(ctx, bson.M{"id": id, "mentorId": mentorID}).Decode(&et)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event type: %w", err)
	}
	return &et, nil
}

func (r *mongoEventTypeRepo) GetByMentorID(ctx context.Context, mentorID string) ([]models.EventType, error) {
	return r.find(ctx, bson.M{"mentorId": mentorID})
}

// GetActiveByMentorID returns the non-hidden event types that drive grid
// generation.
func (r *mongoEventTypeRepo) GetActiveByMentorID(ctx context.Context, mentorID string) ([]models.EventType, error) {
	return r.find(ctx, bson.M{"mentorId": mentorID, "hidden": false})
}

func (r *mongoEventTypeRepo) find(ctx context.Context, filter bson.M) ([]models.EventType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event types: %w", err)
	}
	defer cursor.Close(ctx)

	var ets []models.EventType
	if err := cursor.All(ctx, &ets); err != nil {
		return nil, fmt.Errorf("error decoding event types: %w", err)
	}
	return ets, nil
}
