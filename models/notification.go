package models

// ReminderPayload is the asynq task body for session reminders.
type ReminderPayload struct {
	Target    string `json:"target"` // "mentor" or "mentee"
	ID        string `json:"id"`     // recipient ID
	BookingID string `json:"bookingId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"` // RFC3339
}
