package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	mentorRepo "mentorhub/database/repository/mentor"
	timeslotRepo "mentorhub/database/repository/timeslot"
	"mentorhub/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// MatchService defines methods to rank mentors for a mentee.
type MatchService interface {
	MatchMentors(ctx context.Context, mentee models.Mentee) ([]models.MentorMatch, error)
}

// DefaultMatchService ranks mentors by expertise overlap, rating and
// availability density, with the computed ranking cached per interest set.
type DefaultMatchService struct {
	MentorRepo   mentorRepo.Repository
	TimeslotRepo timeslotRepo.Repository
	CacheClient  *redis.Client
	Logger       *zap.Logger
}

// Scoring constants.
const (
	ExpertiseWeight    = 0.5
	RatingWeight       = 0.3
	AvailabilityWeight = 0.2
	RatingScale        = 5.0
	// Open recurring slots at or above this count score full availability.
	AvailabilitySaturation = 10
	matchCacheTTL          = 10 * time.Minute
)

// MatchMentors retrieves a ranked list of mentors for the mentee's interest
// set. It first attempts to retrieve the result from cache; on a miss it
// computes the ranking and caches it.
func (s *DefaultMatchService) MatchMentors(ctx context.Context, mentee models.Mentee) ([]models.MentorMatch, error) {
	if len(mentee.Interests) == 0 {
		return nil, fmt.Errorf("mentee %s has no interests to match on", mentee.ID)
	}

	interests := normalizeTags(mentee.Interests)
	cacheKey := "match:" + strings.Join(interests, ",")

	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var matches []models.MentorMatch
			if err := json.Unmarshal([]byte(cached), &matches); err == nil {
				return matches, nil
			}
			// If unmarshal fails, fall through to re-computation.
		}
	}

	mentors, err := s.MentorRepo.GetByExpertise(ctx, interests)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve mentors: %w", err)
	}
	if len(mentors) == 0 {
		return nil, fmt.Errorf("no mentors found for interests %v", interests)
	}

	matches := make([]models.MentorMatch, 0, len(mentors))
	for _, m := range mentors {
		overlap := tagOverlap(interests, normalizeTags(m.Expertise))

		ratingScore := 0.0
		if m.RatingCount > 0 {
			ratingScore = m.Rating / RatingScale
		}

		openSlots, err := s.TimeslotRepo.CountOpenRecurring(ctx, m.ID)
		if err != nil {
			s.logger().Warn("match: failed to count open slots",
				zap.String("mentorId", m.ID), zap.Error(err))
		}
		availabilityScore := float64(openSlots) / AvailabilitySaturation
		if availabilityScore > 1 {
			availabilityScore = 1
		}

		score := ExpertiseWeight*overlap +
			RatingWeight*ratingScore +
			AvailabilityWeight*availabilityScore

		matches = append(matches, models.MentorMatch{
			Mentor: m,
			Score:  score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if s.CacheClient != nil {
		if data, err := json.Marshal(matches); err == nil {
			s.CacheClient.Set(ctx, cacheKey, data, matchCacheTTL)
		}
	}
	return matches, nil
}

// tagOverlap is the fraction of wanted tags the mentor covers.
func tagOverlap(wanted, offered []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	offeredSet := make(map[string]struct{}, len(offered))
	for _, t := range offered {
		offeredSet[t] = struct{}{}
	}
	hits := 0
	for _, t := range wanted {
		if _, ok := offeredSet[t]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(wanted))
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

func (s *DefaultMatchService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
