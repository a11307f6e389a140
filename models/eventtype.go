package models

// EventType is a bookable service definition owned by a mentor. Length drives
// slot-grid generation; a 30-minute and a 60-minute event type produce
// different grids for the same day and are never merged.
type EventType struct {
	ID       string  `bson:"id" json:"id"`
	MentorID string  `bson:"mentorId" json:"mentorId"`
	Title    string  `bson:"title" json:"title"`
	Length   int     `bson:"length" json:"length"` // minutes
	Price    float64 `bson:"price" json:"price"`
	Currency string  `bson:"currency" json:"currency"`
	Hidden   bool    `bson:"hidden" json:"hidden"`
}
