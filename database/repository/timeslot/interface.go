// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository stores mentor-authored recurring and specific-date slots. These
// are the input of availability reconciliation, never its output.
type Repository interface {
	ReplaceForMentor(ctx context.Context, mentorID string, slots []models.TimeSlot) ([]string, error)
	UpsertSpecific(ctx context.Context, slot models.TimeSlot) error
	DeleteByID(ctx context.Context, mentorID, slotID string) error
	GetByMentorID(ctx context.Context, mentorID string) ([]models.TimeSlot, error)
	GetRecurring(ctx context.Context, mentorID string) ([]models.TimeSlot, error)
	GetSpecificByDate(ctx context.Context, mentorID, date string) ([]models.TimeSlot, error)
	CountOpenRecurring(ctx context.Context, mentorID string) (int64, error)
}

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a new MongoDB timeslot Repository.
func NewMongoTimeSlotRepo() Repository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoTimeSlotRepo{
		coll: db.Collection("timeslots"),
	}
}
