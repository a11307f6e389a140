// File: services/mentor/timeslot.go
package mentor

import (
	"context"
	"fmt"
	"time"

	"mentorhub/models"
	"mentorhub/utils"
)

// SetupTimeslots replaces the mentor's whole slot set after validating every
// entry. Recurring slots carry a weekday name; specific slots carry one
// calendar date. The mentor flips to "active" once slots exist.
func (s *DefaultService) SetupTimeslots(ctx context.Context, mentorID string, req models.SetupTimeslotsRequest) ([]models.TimeSlot, error) {
	mentor, err := s.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	for i, slot := range req.TimeSlots {
		if err := validateSlot(slot); err != nil {
			return nil, fmt.Errorf("slot %d: %w", i+1, err)
		}
	}

	if _, err := s.Timeslots.ReplaceForMentor(ctx, mentorID, req.TimeSlots); err != nil {
		return nil, fmt.Errorf("failed to store timeslots: %w", err)
	}

	if mentor.Status != "active" {
		mentor.Status = "active"
		if err := s.Repo.Update(ctx, mentor); err != nil {
			return nil, fmt.Errorf("failed to activate mentor: %w", err)
		}
	}

	return s.Timeslots.GetByMentorID(ctx, mentorID)
}

// StarterSchedule seeds a default recurring week for a mentor with no slots:
// hourly windows, reduced on weekends.
func (s *DefaultService) StarterSchedule(ctx context.Context, mentorID string) ([]models.TimeSlot, error) {
	cfg := s.Starter
	if cfg.Step <= 0 {
		cfg = DefaultStarterScheduleConfig()
	}

	var slots []models.TimeSlot
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		start, end := cfg.WeekdayStart, cfg.WeekdayEnd
		if wd == time.Saturday || wd == time.Sunday {
			start, end = cfg.WeekendStart, cfg.WeekendEnd
		}
		for m := start; m+cfg.Step <= end; m += cfg.Step {
			slots = append(slots, models.TimeSlot{
				MentorID:    mentorID,
				Day:         wd.String(),
				StartTime:   utils.FormatClock(m),
				EndTime:     utils.FormatClock(m + cfg.Step),
				IsAvailable: true,
				Type:        models.SlotRecurring,
			})
		}
	}

	return s.SetupTimeslots(ctx, mentorID, models.SetupTimeslotsRequest{TimeSlots: slots})
}

func (s *DefaultService) GetTimeslots(ctx context.Context, mentorID string) ([]models.TimeSlot, error) {
	return s.Timeslots.GetByMentorID(ctx, mentorID)
}

func (s *DefaultService) DeleteTimeslot(ctx context.Context, mentorID, slotID string) error {
	return s.Timeslots.DeleteByID(ctx, mentorID, slotID)
}

func validateSlot(slot models.TimeSlot) error {
	start, err := utils.ParseClock(slot.StartTime)
	if err != nil {
		return err
	}
	end, err := utils.ParseClock(slot.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("startTime %s must be before endTime %s", slot.StartTime, slot.EndTime)
	}

	switch slot.Type {
	case models.SlotRecurring:
		if slot.Date != "" {
			return fmt.Errorf("recurring slot must not carry a date")
		}
		if !validWeekday(slot.Day) {
			return fmt.Errorf("invalid weekday %q", slot.Day)
		}
	case models.SlotSpecific:
		if slot.Day != "" {
			return fmt.Errorf("specific slot must not carry a weekday")
		}
		if _, err := utils.ParseDate(slot.Date, time.UTC); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown slot type %q", slot.Type)
	}
	return nil
}

func validWeekday(name string) bool {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String() == name {
			return true
		}
	}
	return false
}
