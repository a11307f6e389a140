package mentor

import (
	"context"
	"fmt"
	"time"

	"mentorhub/models"
	"mentorhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates a mentor account and issues a session token.
func (s *DefaultService) Register(ctx context.Context, reg models.MentorRegistration) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	mentor := &models.Mentor{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Bio:          reg.Bio,
		Expertise:    reg.Expertise,
		Timezone:     reg.Timezone,
		CalUserID:    reg.CalUserID,
		Status:       "pending",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, mentor); err != nil {
		return nil, err
	}

	token, err := s.issueToken(mentor.ID, mentor.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Mentor: mentor, Token: token}, nil
}

// Authenticate verifies credentials and issues a session token.
func (s *DefaultService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	mentor, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch mentor", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if mentor == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(mentor.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(mentor.ID, mentor.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Mentor: mentor, Token: token}, nil
}

// RevokeAuthToken drops the mentor's active session server-side.
func (s *DefaultService) RevokeAuthToken(ctx context.Context, mentorID string) error {
	return utils.DeleteAuthSession(utils.GetAuthCacheClient(), mentorID)
}

func (s *DefaultService) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	mentor, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrNotFound
	}
	return mentor, nil
}

func (s *DefaultService) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	mentor, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrNotFound
	}
	return mentor, nil
}

func (s *DefaultService) GetAll(ctx context.Context) ([]models.Mentor, error) {
	return s.Repo.GetAll(ctx, nil)
}

// Update applies profile edits. Email and password changes go through
// dedicated flows, not here.
func (s *DefaultService) Update(ctx context.Context, id string, updates models.MentorRegistration) (*models.Mentor, error) {
	mentor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != "" {
		mentor.Name = updates.Name
	}
	if updates.Bio != "" {
		mentor.Bio = updates.Bio
	}
	if len(updates.Expertise) > 0 {
		mentor.Expertise = updates.Expertise
	}
	if updates.Timezone != "" {
		mentor.Timezone = updates.Timezone
	}
	if updates.CalUserID != "" {
		mentor.CalUserID = updates.CalUserID
	}

	if err := s.Repo.Update(ctx, mentor); err != nil {
		return nil, err
	}
	return mentor, nil
}

func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	return utils.DeleteAuthSession(utils.GetAuthCacheClient(), id)
}

func (s *DefaultService) issueToken(id, email string) (string, error) {
	token, err := utils.GenerateToken(id, email, "mentor", tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), id, utils.HashToken(token)); err != nil {
		return "", err
	}
	return token, nil
}
