// File: database/repository/mentee/interface.go
package menteeRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines methods for mentee data access.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Mentee, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentee, error)
	GetAll(ctx context.Context) ([]models.Mentee, error)
	Create(ctx context.Context, mentee *models.Mentee) error
	Update(ctx context.Context, mentee *models.Mentee) error
	Delete(ctx context.Context, id string) error
}

type mongoMenteeRepo struct {
	coll *mongo.Collection
}

// NewMongoMenteeRepo constructs a new MongoDB mentee Repository.
func NewMongoMenteeRepo() Repository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoMenteeRepo{
		coll: db.Collection("mentees"),
	}
}
