package mentee

import (
	"context"
	"errors"
	"fmt"
	"time"

	menteeRepo "mentorhub/database/repository/mentee"
	"mentorhub/models"
	"mentorhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = errors.New("mentee not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenTTL = 72 * time.Hour

// AuthResponse carries a mentee record together with a fresh token.
type AuthResponse struct {
	Mentee *models.Mentee `json:"mentee"`
	Token  string         `json:"token"`
}

// Service defines mentee account management.
type Service interface {
	Register(ctx context.Context, reg models.MenteeRegistration) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeAuthToken(ctx context.Context, menteeID string) error
	GetByID(ctx context.Context, id string) (*models.Mentee, error)
	Update(ctx context.Context, id string, updates models.MenteeRegistration) (*models.Mentee, error)
	Delete(ctx context.Context, id string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo menteeRepo.Repository
}

func (s *DefaultService) Register(ctx context.Context, reg models.MenteeRegistration) (*AuthResponse, error) {
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
	mentee := &models.Mentee{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Interests:    reg.Interests,
		Goals:        reg.Goals,
		Timezone:     reg.Timezone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, mentee); err != nil {
		return nil, err
	}

	token, err := s.issueToken(mentee.ID, mentee.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Mentee: mentee, Token: token}, nil
}

func (s *DefaultService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	mentee, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch mentee", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if mentee == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(mentee.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(mentee.ID, mentee.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Mentee: mentee, Token: token}, nil
}

func (s *DefaultService) RevokeAuthToken(ctx context.Context, menteeID string) error {
	return utils.DeleteAuthSession(utils.GetAuthCacheClient(), menteeID)
}

func (s *DefaultService) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
	mentee, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mentee == nil {
		return nil, ErrNotFound
	}
	return mentee, nil
}

func (s *DefaultService) Update(ctx context.Context, id string, updates models.MenteeRegistration) (*models.Mentee, error) {
	mentee, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != "" {
		mentee.Name = updates.Name
	}
	if len(updates.Interests) > 0 {
		mentee.Interests = updates.Interests
	}
	if updates.Goals != "" {
		mentee.Goals = updates.Goals
	}
	if updates.Timezone != "" {
		mentee.Timezone = updates.Timezone
	}

	if err := s.Repo.Update(ctx, mentee); err != nil {
		return nil, err
	}
	return mentee, nil
}

func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	return utils.DeleteAuthSession(utils.GetAuthCacheClient(), id)
}

func (s *DefaultService) issueToken(id, email string) (string, error) {
	token, err := utils.GenerateToken(id, email, "mentee", tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), id, utils.HashToken(token)); err != nil {
		return "", err
	}
	return token, nil
}
