// File: database/repository/timeslot/queries.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mentorhub/models"
)

func (r *mongoTimeSlotRepo) GetRecurring(ctx context.Context, mentorID string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"mentorId": mentorID,
		"type":     models.SlotRecurring,
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recurring slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding recurring slots: %w", err)
	}
	return slots, nil
}

func (r *mongoTimeSlotRepo) GetSpecificByDate(ctx context.Context, mentorID, date string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"mentorId": mentorID,
		"type":     models.SlotSpecific,
		"date":     date,
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch specific slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding specific slots: %w", err)
	}
	return slots, nil
}

// CountOpenRecurring feeds the matching score's availability-density signal.
func (r *mongoTimeSlotRepo) CountOpenRecurring(ctx context.Context, mentorID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"mentorId":    mentorID,
		"type":        models.SlotRecurring,
		"isAvailable": true,
	}
	return r.coll.CountDocuments(ctx, filter)
}
