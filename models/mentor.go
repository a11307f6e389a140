package models

import "time"

// Mentor is the single writer of its own TimeSlot set.
type Mentor struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Expertise    []string  `bson:"expertise,omitempty" json:"expertise,omitempty"`
	Rating       float64   `bson:"rating" json:"rating"`
	RatingCount  int       `bson:"ratingCount" json:"ratingCount"`
	Timezone     string    `bson:"timezone" json:"timezone"` // IANA name, e.g. "Europe/Berlin"
	CalUserID    string    `bson:"calUserId,omitempty" json:"calUserId,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	Status       string    `bson:"status" json:"status"` // "pending" until slots are set up, then "active"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MentorRegistration is the signup payload.
type MentorRegistration struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	Bio       string   `json:"bio"`
	Expertise []string `json:"expertise"`
	Timezone  string   `json:"timezone"`
	CalUserID string   `json:"calUserId"`
}
