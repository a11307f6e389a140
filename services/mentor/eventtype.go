// File: services/mentor/eventtype.go
package mentor

import (
	"context"
	"fmt"

	"mentorhub/models"
)

func (s *DefaultService) CreateEventType(ctx context.Context, et *models.EventType) error {
	if err := validateEventType(et); err != nil {
		return err
	}
	return s.EventTypes.Create(ctx, et)
}

func (s *DefaultService) UpdateEventType(ctx context.Context, et *models.EventType) error {
	if err := validateEventType(et); err != nil {
		return err
	}
	return s.EventTypes.Update(ctx, et)
}

func (s *DefaultService) DeleteEventType(ctx context.Context, mentorID, id string) error {
	return s.EventTypes.Delete(ctx, mentorID, id)
}

func (s *DefaultService) GetEventTypes(ctx context.Context, mentorID string) ([]models.EventType, error) {
	return s.EventTypes.GetByMentorID(ctx, mentorID)
}

// ImportEventTypes pulls the mentor's remote catalog and stores any entries
// not present locally yet.
func (s *DefaultService) ImportEventTypes(ctx context.Context, mentorID string) ([]models.EventType, error) {
	mentor, err := s.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor.CalUserID == "" {
		return nil, fmt.Errorf("mentor %s has no linked calendar account", mentorID)
	}
	if s.Cal == nil {
		return nil, fmt.Errorf("calendar integration not configured")
	}

	remote, err := s.Cal.EventTypes(ctx, mentor.CalUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote event types: %w", err)
	}

	local, err := s.EventTypes.GetByMentorID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]struct{}, len(local))
	for _, et := range local {
		existing[et.ID] = struct{}{}
	}

	for _, et := range remote {
		if _, ok := existing[et.ID]; ok {
			continue
		}
		et.MentorID = mentorID
		if err := s.EventTypes.Create(ctx, &et); err != nil {
			return nil, err
		}
	}

	return s.EventTypes.GetByMentorID(ctx, mentorID)
}

func validateEventType(et *models.EventType) error {
	if et.MentorID == "" {
		return fmt.Errorf("event type must belong to a mentor")
	}
	if et.Title == "" {
		return fmt.Errorf("event type title is required")
	}
	if et.Length <= 0 {
		return fmt.Errorf("event type length must be positive, got %d", et.Length)
	}
	if et.Price < 0 {
		return fmt.Errorf("event type price must not be negative")
	}
	return nil
}
