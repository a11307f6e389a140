package booking

import (
	"context"

	bookingRepo "mentorhub/database/repository/booking"
	mentorRepo "mentorhub/database/repository/mentor"
	timeslotRepo "mentorhub/database/repository/timeslot"
	"mentorhub/models"
	"mentorhub/services/availability"
	"mentorhub/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Service defines the booking session flow.
type Service interface {
	Create(ctx context.Context, menteeID string, req models.BookingRequest) (*models.Booking, error)
	Confirm(ctx context.Context, menteeID, bookingID string) (*models.Booking, error)
	Cancel(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	GetByMentee(ctx context.Context, menteeID string) ([]models.Booking, error)
}

// DefaultService coordinates availability re-checks, slot consumption,
// payment intents, reminders and pushes around the booking record.
type DefaultService struct {
	Bookings     bookingRepo.Repository
	Mentors      mentorRepo.Repository
	Timeslots    timeslotRepo.Repository
	Availability *availability.Service
	Notify       notification.Service
	AsynqClient  *asynq.Client
	ReminderLead int // minutes before session start
	Logger       *zap.Logger
}
