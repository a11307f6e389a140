package mentor

import (
	"context"

	eventtypeRepo "mentorhub/database/repository/eventtype"
	mentorRepo "mentorhub/database/repository/mentor"
	timeslotRepo "mentorhub/database/repository/timeslot"
	"mentorhub/models"
	"mentorhub/services/calcom"
)

// AuthResponse carries a mentor record together with a fresh token.
type AuthResponse struct {
	Mentor *models.Mentor `json:"mentor"`
	Token  string         `json:"token"`
}

// Service defines mentor account, slot and event-type management.
type Service interface {
	// Account management
	Register(ctx context.Context, reg models.MentorRegistration) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeAuthToken(ctx context.Context, mentorID string) error
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	GetAll(ctx context.Context) ([]models.Mentor, error)
	Update(ctx context.Context, id string, updates models.MentorRegistration) (*models.Mentor, error)
	Delete(ctx context.Context, id string) error

	// Timeslot management
	SetupTimeslots(ctx context.Context, mentorID string, req models.SetupTimeslotsRequest) ([]models.TimeSlot, error)
	StarterSchedule(ctx context.Context, mentorID string) ([]models.TimeSlot, error)
	GetTimeslots(ctx context.Context, mentorID string) ([]models.TimeSlot, error)
	DeleteTimeslot(ctx context.Context, mentorID, slotID string) error

	// Event-type management
	CreateEventType(ctx context.Context, et *models.EventType) error
	UpdateEventType(ctx context.Context, et *models.EventType) error
	DeleteEventType(ctx context.Context, mentorID, id string) error
	GetEventTypes(ctx context.Context, mentorID string) ([]models.EventType, error)
	ImportEventTypes(ctx context.Context, mentorID string) ([]models.EventType, error)
}

// StarterScheduleConfig shapes the default week generated for mentors who
// have not authored any slots yet: a full weekday window and a reduced
// weekend window, on an hourly step.
type StarterScheduleConfig struct {
	WeekdayStart int // minutes from midnight
	WeekdayEnd   int
	WeekendStart int
	WeekendEnd   int
	Step         int
}

// DefaultStarterScheduleConfig is 09:00-18:00 on weekdays, 10:00-16:00 on
// weekends, hourly.
func DefaultStarterScheduleConfig() StarterScheduleConfig {
	return StarterScheduleConfig{
		WeekdayStart: 9 * 60,
		WeekdayEnd:   18 * 60,
		WeekendStart: 10 * 60,
		WeekendEnd:   16 * 60,
		Step:         60,
	}
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo       mentorRepo.Repository
	Timeslots  timeslotRepo.Repository
	EventTypes eventtypeRepo.Repository
	Cal        *calcom.Client
	Starter    StarterScheduleConfig
}
