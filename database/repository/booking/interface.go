// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository stores confirmed and pending bookings.
type Repository interface {
	Create(ctx context.Context, b *models.Booking) error
	Update(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByMenteeID(ctx context.Context, menteeID string) ([]models.Booking, error)
	GetByMentorAndDate(ctx context.Context, mentorID, date string) ([]models.Booking, error)
	ExistsForSlot(ctx context.Context, mentorID, date, startTime string) (bool, error)
	StatsByMentor(ctx context.Context) ([]models.MentorBookingStats, error)
	UpcomingCount(ctx context.Context, from string) (int64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB booking Repository.
func NewMongoBookingRepo() Repository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
