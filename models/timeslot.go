package models

// SlotType distinguishes weekly-repeating slots from one-off date overrides.
type SlotType string

const (
	SlotRecurring SlotType = "recurring"
	SlotSpecific  SlotType = "specific"
)

// TimeSlot is a mentor-authored booking window. Recurring slots carry Day
// (weekday name) and apply every matching weekday; specific slots carry Date
// and apply to exactly one calendar day, overriding any recurring slot with
// the same start/end window on that day.
type TimeSlot struct {
	ID          string   `bson:"id" json:"id"`
	MentorID    string   `bson:"mentorId" json:"mentorId"`
	Day         string   `bson:"day,omitempty" json:"day,omitempty"`   // e.g. "Monday", recurring only
	Date        string   `bson:"date,omitempty" json:"date,omitempty"` // e.g. "2025-03-04", specific only
	StartTime   string   `bson:"startTime" json:"startTime"`           // "HH:MM", 24-hour
	EndTime     string   `bson:"endTime" json:"endTime"`               // "HH:MM", 24-hour
	IsAvailable bool     `bson:"isAvailable" json:"isAvailable"`
	Type        SlotType `bson:"type" json:"type"`
}

// SetupTimeslotsRequest defines the payload for replacing a mentor's slot set.
type SetupTimeslotsRequest struct {
	TimeSlots []TimeSlot `json:"timeSlots" binding:"required,min=1"`
}
