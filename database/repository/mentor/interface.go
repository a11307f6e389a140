// File: database/repository/mentor/interface.go
package mentorRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines methods for mentor data access.
type Repository interface {
	// GetByID retrieves a mentor by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	// GetByEmail retrieves a mentor by its email address.
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	// GetAll retrieves all mentors with an optional projection.
	GetAll(ctx context.Context, projection bson.M) ([]models.Mentor, error)
	// GetByExpertise retrieves active mentors carrying any of the given tags.
	GetByExpertise(ctx context.Context, tags []string) ([]models.Mentor, error)
	// Create inserts a new mentor record.
	Create(ctx context.Context, mentor *models.Mentor) error
	// Update modifies an existing mentor record.
	Update(ctx context.Context, mentor *models.Mentor) error
	// Delete removes a mentor record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoMentorRepo struct {
	coll *mongo.Collection
}

// NewMongoMentorRepo constructs a new MongoDB mentor Repository.
func NewMongoMentorRepo() Repository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoMentorRepo{
		coll: db.Collection("mentors"),
	}
}
