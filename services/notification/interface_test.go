package notification

import (
	"context"
	"testing"

	"mentorhub/models"
	"mentorhub/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeMentorRepo struct {
	mentor *models.Mentor
}

func (f *fakeMentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	return f.mentor, nil
}
func (f *fakeMentorRepo) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	return nil, nil
}
func (f *fakeMentorRepo) GetAll(ctx context.Context, projection bson.M) ([]models.Mentor, error) {
	return nil, nil
}
func (f *fakeMentorRepo) GetByExpertise(ctx context.Context, tags []string) ([]models.Mentor, error) {
	return nil, nil
}
func (f *fakeMentorRepo) Create(ctx context.Context, mentor *models.Mentor) error { return nil }
func (f *fakeMentorRepo) Update(ctx context.Context, mentor *models.Mentor) error { return nil }
func (f *fakeMentorRepo) Delete(ctx context.Context, id string) error             { return nil }

type fakeMenteeRepo struct {
	mentee *models.Mentee
}

func (f *fakeMenteeRepo) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
	return f.mentee, nil
}
func (f *fakeMenteeRepo) GetByEmail(ctx context.Context, email string) (*models.Mentee, error) {
	return nil, nil
}
func (f *fakeMenteeRepo) GetAll(ctx context.Context) ([]models.Mentee, error) { return nil, nil }
func (f *fakeMenteeRepo) Create(ctx context.Context, mentee *models.Mentee) error {
	return nil
}
func (f *fakeMenteeRepo) Update(ctx context.Context, mentee *models.Mentee) error {
	return nil
}
func (f *fakeMenteeRepo) Delete(ctx context.Context, id string) error { return nil }

// Firebase is optional at boot; pushes must degrade to an error, not a panic.
func TestSendPush_WithoutFCMClient(t *testing.T) {
	utils.FCMClient = nil

	svc := &DefaultService{
		Mentors: &fakeMentorRepo{mentor: &models.Mentor{ID: "m1", FCMToken: "token-1"}},
		Mentees: &fakeMenteeRepo{mentee: &models.Mentee{ID: "u1", FCMToken: "token-2"}},
	}

	if err := svc.SendMentorPush(context.Background(), "m1", "t", "b", nil); err == nil {
		t.Fatalf("expected error when messaging client is absent")
	}
	if err := svc.SendMenteePush(context.Background(), "u1", "t", "b", nil); err == nil {
		t.Fatalf("expected error when messaging client is absent")
	}
}

func TestSendPush_MissingToken(t *testing.T) {
	svc := &DefaultService{
		Mentors: &fakeMentorRepo{mentor: &models.Mentor{ID: "m1"}},
		Mentees: &fakeMenteeRepo{mentee: &models.Mentee{ID: "u1"}},
	}

	if err := svc.SendMentorPush(context.Background(), "m1", "t", "b", nil); err == nil {
		t.Fatalf("expected error for mentor without FCM token")
	}
	if err := svc.SendMenteePush(context.Background(), "u1", "t", "b", nil); err == nil {
		t.Fatalf("expected error for mentee without FCM token")
	}
}
