package models

import "time"

// BusyInterval is a remote-calendar commitment. Start/End are ISO-8601
// timestamps kept as strings so that parse failures can be isolated to the
// date/event-type cell being resolved instead of failing the whole decode.
type BusyInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GridSlot is one generated bookable unit of a day's grid for one event type.
type GridSlot struct {
	Time        string `json:"time"`    // "HH:MM" slot start
	EndTime     string `json:"endTime"` // "HH:MM" slot end (start + event length)
	EventTypeID string `json:"eventTypeId,omitempty"`
	Available   bool   `json:"available"`
}

// DayAvailability groups resolved slots for one calendar date. An empty Slots
// list is a valid fully-unavailable day, not an error.
type DayAvailability struct {
	Date  string     `json:"date"`
	Slots []GridSlot `json:"slots"`
}

// Availability is the reconciled per-mentor view over a date range. It is
// regenerated on demand and never persisted; the mentor's stored TimeSlots
// are its input, not its output. SkippedCells counts date/event-type cells
// dropped due to fetch or parse failures so callers can tell "truly no
// slots" apart from "reconciliation was partial".
type Availability struct {
	MentorID     string            `json:"mentorId"`
	GeneratedAt  time.Time         `json:"generatedAt"`
	PerDate      []DayAvailability `json:"perDate"`
	SkippedCells int               `json:"skippedCells"`
}
