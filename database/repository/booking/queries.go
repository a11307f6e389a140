// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
)

// StatsByMentor aggregates booking counts and revenue per mentor for the
// admin dashboard.
func (r *mongoBookingRepo) StatsByMentor(ctx context.Context) ([]models.MentorBookingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$mentorId",
			"total": bson.M{"$sum": 1},
			"confirmed": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.BookingConfirmed}}, 1, 0,
			}}},
			"cancelled": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.BookingCancelled}}, 1, 0,
			}}},
			"revenue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.BookingConfirmed}}, "$price", 0,
			}}},
		}}},
		{{Key: "$sort", Value: bson.M{"total": -1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []models.MentorBookingStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	return stats, nil
}

// UpcomingCount counts non-cancelled bookings on or after the given date.
func (r *mongoBookingRepo) UpcomingCount(ctx context.Context, from string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":   bson.M{"$gte": from},
		"status": bson.M{"$ne": models.BookingCancelled},
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming bookings: %w", err)
	}
	return n, nil
}
