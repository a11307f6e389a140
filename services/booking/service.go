package booking

import (
	"context"
	"fmt"
	"time"

	"mentorhub/models"
	"mentorhub/services/availability"
	"mentorhub/services/tasks"
	"mentorhub/utils"

	"go.uber.org/zap"
)

// Create validates the requested slot and writes a pending booking. The slot
// is not consumed until confirmation.
func (s *DefaultService) Create(ctx context.Context, menteeID string, req models.BookingRequest) (*models.Booking, error) {
	mentor, err := s.Mentors.GetByID(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, fmt.Errorf("mentor %s not found", req.MentorID)
	}

	et, err := s.Availability.EventTypes.GetByID(ctx, req.MentorID, req.EventTypeID)
	if err != nil {
		return nil, err
	}
	if et == nil {
		return nil, fmt.Errorf("event type %s not found", req.EventTypeID)
	}

	open, err := s.Availability.CheckSlot(ctx, *mentor, et.ID, req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !open {
		return nil, NewSlotConflictError("requested slot is not available")
	}

	taken, err := s.Bookings.ExistsForSlot(ctx, req.MentorID, req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewSlotConflictError("slot already claimed by another booking")
	}

	startMin, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		MentorID:    req.MentorID,
		MenteeID:    menteeID,
		EventTypeID: et.ID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     utils.FormatClock(startMin + et.Length),
		Status:      models.BookingPending,
		Price:       et.Price,
		Currency:    et.Currency,
	}

	if et.Price > 0 {
		intentID, err := s.createPaymentIntent(booking)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		booking.PaymentIntentID = intentID
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Confirm re-checks the slot right before committing (the availability view
// shown at creation time may be stale), consumes it by writing a
// specific-date override with isAvailable=false, and schedules reminders.
func (s *DefaultService) Confirm(ctx context.Context, menteeID, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil || booking.MenteeID != menteeID {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.Status != models.BookingPending {
		return nil, fmt.Errorf("booking %s is %s, not pending", bookingID, booking.Status)
	}

	mentor, err := s.Mentors.GetByID(ctx, booking.MentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, fmt.Errorf("mentor %s not found", booking.MentorID)
	}

	open, err := s.Availability.CheckSlot(ctx, *mentor, booking.EventTypeID, booking.Date, booking.StartTime)
	if err != nil {
		return nil, fmt.Errorf("availability re-check failed: %w", err)
	}
	if !open {
		return nil, NewSlotConflictError("slot was taken while the booking was pending")
	}

	// Consume the slot: the specific-date override wins over any recurring
	// pattern on that date.
	consumed := models.TimeSlot{
		MentorID:    booking.MentorID,
		Date:        booking.Date,
		StartTime:   booking.StartTime,
		EndTime:     s.slotWindow(ctx, booking),
		IsAvailable: false,
		Type:        models.SlotSpecific,
	}
	if err := s.Timeslots.UpsertSpecific(ctx, consumed); err != nil {
		return nil, fmt.Errorf("failed to consume slot: %w", err)
	}

	booking.Status = models.BookingConfirmed
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.Availability.InvalidateCache(ctx, booking.MentorID)
	s.scheduleReminders(booking, mentor.Timezone)
	s.sendConfirmationPushes(ctx, booking)

	return booking, nil
}

// Cancel releases the slot and marks the booking cancelled. Both the owning
// mentee and the mentor may cancel.
func (s *DefaultService) Cancel(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.MenteeID != actorID && booking.MentorID != actorID {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.Status == models.BookingCancelled {
		return booking, nil
	}

	wasConfirmed := booking.Status == models.BookingConfirmed
	booking.Status = models.BookingCancelled
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	if wasConfirmed {
		released := models.TimeSlot{
			MentorID:    booking.MentorID,
			Date:        booking.Date,
			StartTime:   booking.StartTime,
			EndTime:     s.slotWindow(ctx, booking),
			IsAvailable: true,
			Type:        models.SlotSpecific,
		}
		if err := s.Timeslots.UpsertSpecific(ctx, released); err != nil {
			s.logger().Error("failed to release slot after cancellation",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
		s.Availability.InvalidateCache(ctx, booking.MentorID)
	}

	return booking, nil
}

// slotWindow resolves the mentor-authored slot window covering the booking's
// start time. The override written on confirm/cancel must carry that window,
// not one derived from the event-type length: the merge keys slots by their
// full start-end window, so a shorter override would coexist with the
// authored slot instead of replacing it. Falls back to the booking's own end
// time when no local pattern covers the start.
func (s *DefaultService) slotWindow(ctx context.Context, booking *models.Booking) string {
	recurring, err := s.Timeslots.GetRecurring(ctx, booking.MentorID)
	if err != nil {
		s.logger().Warn("failed to load recurring slots for override window",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return booking.EndTime
	}
	specific, err := s.Timeslots.GetSpecificByDate(ctx, booking.MentorID, booking.Date)
	if err != nil {
		s.logger().Warn("failed to load specific slots for override window",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return booking.EndTime
	}

	local, err := availability.MergeLocalPatterns(recurring, specific, booking.Date)
	if err != nil {
		return booking.EndTime
	}
	for _, slot := range local {
		if slot.StartTime == booking.StartTime {
			return slot.EndTime
		}
	}
	return booking.EndTime
}

func (s *DefaultService) GetByMentee(ctx context.Context, menteeID string) ([]models.Booking, error) {
	return s.Bookings.GetByMenteeID(ctx, menteeID)
}

func (s *DefaultService) scheduleReminders(booking *models.Booking, mentorTZ string) {
	if s.AsynqClient == nil {
		return
	}

	loc := utils.LoadLocation(mentorTZ)
	start, err := utils.CombineDateClock(booking.Date, booking.StartTime, loc)
	if err != nil {
		s.logger().Error("failed to resolve session start for reminder",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return
	}

	lead := time.Duration(s.ReminderLead) * time.Minute
	if lead <= 0 {
		lead = time.Hour
	}
	fireAt := start.Add(-lead)
	if fireAt.Before(time.Now()) {
		return
	}

	for _, target := range []struct {
		kind string
		id   string
	}{
		{"mentor", booking.MentorID},
		{"mentee", booking.MenteeID},
	} {
		payload := models.ReminderPayload{
			Target:    target.kind,
			ID:        target.id,
			BookingID: booking.ID,
			Title:     "Upcoming mentoring session",
			Body:      fmt.Sprintf("Your session starts at %s on %s", booking.StartTime, booking.Date),
			FireDate:  fireAt.Format(time.RFC3339),
		}
		task, opts, err := tasks.NewReminderTask(payload, fireAt)
		if err != nil {
			s.logger().Error("failed to build reminder task", zap.Error(err))
			continue
		}
		if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
			s.logger().Error("failed to enqueue reminder", zap.Error(err))
		}
	}
}

func (s *DefaultService) sendConfirmationPushes(ctx context.Context, booking *models.Booking) {
	if s.Notify == nil {
		return
	}
	data := map[string]string{"bookingId": booking.ID}
	body := fmt.Sprintf("Session on %s at %s confirmed", booking.Date, booking.StartTime)

	if err := s.Notify.SendMentorPush(ctx, booking.MentorID, "Booking confirmed", body, data); err != nil {
		s.logger().Warn("mentor push failed", zap.String("bookingId", booking.ID), zap.Error(err))
	}
	if err := s.Notify.SendMenteePush(ctx, booking.MenteeID, "Booking confirmed", body, data); err != nil {
		s.logger().Warn("mentee push failed", zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

func (s *DefaultService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
