package models

import "time"

type Mentee struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Interests    []string  `bson:"interests,omitempty" json:"interests,omitempty"`
	Goals        string    `bson:"goals,omitempty" json:"goals,omitempty"`
	Timezone     string    `bson:"timezone" json:"timezone"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type MenteeRegistration struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	Interests []string `json:"interests"`
	Goals     string   `json:"goals"`
	Timezone  string   `json:"timezone"`
}
