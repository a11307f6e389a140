package notification

import (
	"context"
	"fmt"

	menteeRepo "mentorhub/database/repository/mentee"
	mentorRepo "mentorhub/database/repository/mentor"
	"mentorhub/utils"

	"firebase.google.com/go/v4/messaging"
)

// Service defines methods for sending FCM pushes.
type Service interface {
	SendMenteePush(ctx context.Context, menteeID, title, body string, data map[string]string) error
	SendMentorPush(ctx context.Context, mentorID, title, body string, data map[string]string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Mentors mentorRepo.Repository
	Mentees menteeRepo.Repository
}

// SendMenteePush looks up a mentee's FCM token and sends a push.
func (s *DefaultService) SendMenteePush(ctx context.Context, menteeID, title, body string, data map[string]string) error {
	m, err := s.Mentees.GetByID(ctx, menteeID)
	if err != nil || m == nil {
		return fmt.Errorf("SendMenteePush: could not find mentee %s: %w", menteeID, err)
	}
	if m.FCMToken == "" {
		return fmt.Errorf("SendMenteePush: mentee %s has no FCM token", menteeID)
	}
	return send(ctx, m.FCMToken, title, body, withRole(data, "mentee"))
}

// SendMentorPush looks up a mentor's FCM token and sends a push.
func (s *DefaultService) SendMentorPush(ctx context.Context, mentorID, title, body string, data map[string]string) error {
	m, err := s.Mentors.GetByID(ctx, mentorID)
	if err != nil || m == nil {
		return fmt.Errorf("SendMentorPush: could not find mentor %s: %w", mentorID, err)
	}
	if m.FCMToken == "" {
		return fmt.Errorf("SendMentorPush: mentor %s has no FCM token", mentorID)
	}
	return send(ctx, m.FCMToken, title, body, withRole(data, "mentor"))
}

func send(ctx context.Context, token, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("fcm not configured")
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func withRole(data map[string]string, role string) map[string]string {
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}
	return data
}
