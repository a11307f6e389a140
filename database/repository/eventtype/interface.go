// File: database/repository/eventtype/interface.go
package eventtypeRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the per-mentor catalog of bookable service definitions.
type Repository interface {
	Create(ctx context.Context, et *models.EventType) error
	Update(ctx context.Context, et *models.EventType) error
	Delete(ctx context.Context, mentorID, id string) error
	GetByID(ctx context.Context, mentorID, id string) (*models.EventType, error)
	GetByMentorID(ctx context.Context, mentorID string) ([]models.EventType, error)
	GetActiveByMentorID(ctx context.Context, mentorID string) ([]models.EventType, error)
}

type mongoEventTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoEventTypeRepo constructs a new MongoDB event-type Repository.
func NewMongoEventTypeRepo() Repository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoEventTypeRepo{
		coll: db.Collection("eventtypes"),
	}
}
