// File: database/repository/timeslot/crud.go
package timeslotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorhub/models"
)

// ReplaceForMentor swaps the mentor's whole slot set in one shot. The mentor
// is the single writer of their slots, so a delete-then-insert is safe here.
func (r *mongoTimeSlotRepo) ReplaceForMentor(ctx context.Context, mentorID string, slots []models.TimeSlot) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"mentorId": mentorID}); err != nil {
		return nil, err
	}

	docs := make([]interface{}, len(slots))
	ids := make([]string, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		slot.MentorID = mentorID
		docs[i] = slot
		ids[i] = slot.ID
	}

	if _, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)}); err != nil {
		return nil, err
	}
	return ids, nil
}

// UpsertSpecific writes a specific-date override keyed by mentor, date and
// time window. The booking flow uses this to consume a slot.
func (r *mongoTimeSlotRepo) UpsertSpecific(ctx context.Context, slot models.TimeSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	slot.Type = models.SlotSpecific
	slot.Day = ""

	filter := bson.M{
		"mentorId":  slot.MentorID,
		"type":      models.SlotSpecific,
		"date":      slot.Date,
		"startTime": slot.StartTime,
		"endTime":   slot.EndTime,
	}
	update := bson.M{"$set": slot}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoTimeSlotRepo) DeleteByID(ctx context.Context, mentorID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID, "mentorId": mentorID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTimeSlotRepo) GetByMentorID(ctx context.Context, mentorID string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"mentorId": mentorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func boolPtr(b bool) *bool { return &b }
