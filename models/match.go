package models

// MentorMatch is one ranked entry of a matching result.
type MentorMatch struct {
	Mentor Mentor  `json:"mentor"`
	Score  float64 `json:"score"`
}
