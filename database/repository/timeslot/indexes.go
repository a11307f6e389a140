// File: database/repository/timeslot/indexes.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the timeslots collection.
func (r *mongoTimeSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: all slots of one mentor by recurrence class.
		{
			Keys:    bson.D{{Key: "mentorId", Value: 1}, {Key: "type", Value: 1}},
			Options: options.Index().SetName("mentor_type_idx"),
		},
		// Specific-date override lookups.
		{
			Keys:    bson.D{{Key: "mentorId", Value: 1}, {Key: "type", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("mentor_type_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create timeslot indexes: %w", err)
	}
	return nil
}
