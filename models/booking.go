package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a mentee's claim on one grid slot of one event type.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	MentorID        string    `bson:"mentorId" json:"mentorId"`
	MenteeID        string    `bson:"menteeId" json:"menteeId"`
	EventTypeID     string    `bson:"eventTypeId" json:"eventTypeId"`
	Date            string    `bson:"date" json:"date"`           // "2006-01-02"
	StartTime       string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime         string    `bson:"endTime" json:"endTime"`
	Status          string    `bson:"status" json:"status"`
	Price           float64   `bson:"price" json:"price"`
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the payload for initiating a booking.
type BookingRequest struct {
	MentorID    string `json:"mentorId" binding:"required"`
	EventTypeID string `json:"eventTypeId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
}

// MentorBookingStats is one row of the admin analytics aggregation.
type MentorBookingStats struct {
	MentorID  string  `bson:"_id" json:"mentorId"`
	Total     int     `bson:"total" json:"total"`
	Confirmed int     `bson:"confirmed" json:"confirmed"`
	Cancelled int     `bson:"cancelled" json:"cancelled"`
	Revenue   float64 `bson:"revenue" json:"revenue"`
}
