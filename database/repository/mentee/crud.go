// File: database/repository/mentee/crud.go
package menteeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
)

func (r *mongoMenteeRepo) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mentee models.Mentee
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&mentee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch mentee %s: %w", id, err)
	}
	return &mentee, nil
}

func (r *mongoMenteeRepo) GetByEmail(ctx context.Context, email string) (*models.Mentee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mentee models.Mentee
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mentee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch mentee by email: %w", err)
	}
	return &mentee, nil
}

func (r *mongoMenteeRepo) GetAll(ctx context.Context) ([]models.Mentee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentees: %w", err)
	}
	defer cursor.Close(ctx)

	var mentees []models.Mentee
	if err := cursor.All(ctx, &mentees); err != nil {
		return nil, fmt.Errorf("error decoding mentees: %w", err)
	}
	return mentees, nil
}

func (r *mongoMenteeRepo) Create(ctx context.Context, mentee *models.Mentee) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, mentee); err != nil {
		return fmt.Errorf("failed to create mentee: %w", err)
	}
	return nil
}

func (r *mongoMenteeRepo) Update(ctx context.Context, mentee *models.Mentee) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	mentee.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": mentee.ID}, mentee)
	if err != nil {
		return fmt.Errorf("failed to update mentee: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoMenteeRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete mentee: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
