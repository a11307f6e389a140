package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	eventtypeRepo "mentorhub/database/repository/eventtype"
	timeslotRepo "mentorhub/database/repository/timeslot"
	"mentorhub/models"
	"mentorhub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BusyFetcher is the remote busy-interval feed. The returned timezone is the
// remote calendar's display zone; busy timestamps themselves are absolute.
type BusyFetcher interface {
	BusyTimes(ctx context.Context, calUserID, dateFrom, dateTo, eventTypeID string) ([]models.BusyInterval, string, error)
}

// Service reconciles a mentor's locally stored slot preferences with the
// remote calendar's busy intervals. Dependencies are injected; the service
// holds no state of its own beyond the cache client.
type Service struct {
	Timeslots  timeslotRepo.Repository
	EventTypes eventtypeRepo.Repository
	Busy       BusyFetcher
	Cache      *redis.Client
	Grid       GridConfig
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

const cacheKeyFormat = "availability:%s:%s:%s"

// GetAvailability produces the day-by-day slot view for a mentor over an
// inclusive date range. Mentors linked to a remote calendar get the grid
// reconciled against busy intervals; others get their recurring/specific
// patterns resolved per date. Partial failures shrink the result and bump
// SkippedCells instead of erroring.
func (s *Service) GetAvailability(ctx context.Context, mentor models.Mentor, dateFrom, dateTo string) (*models.Availability, error) {
	cacheKey := fmt.Sprintf(cacheKeyFormat, mentor.ID, dateFrom, dateTo)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var av models.Availability
			if err := json.Unmarshal([]byte(cached), &av); err == nil {
				return &av, nil
			}
		}
	}

	var (
		rng RangeResult
		err error
	)
	if mentor.CalUserID != "" && s.Busy != nil {
		rng, err = s.resolveRemote(ctx, mentor, dateFrom, dateTo)
	} else {
		rng, err = s.resolveLocal(ctx, mentor, dateFrom, dateTo)
	}
	if err != nil {
		return nil, err
	}

	av := &models.Availability{
		MentorID:     mentor.ID,
		GeneratedAt:  time.Now(),
		PerDate:      rng.Days,
		SkippedCells: rng.Skipped,
	}

	// Only complete results are cached; a partial view would pin the gaps
	// until the TTL expires.
	if s.Cache != nil && rng.Skipped == 0 {
		if data, err := json.Marshal(av); err == nil {
			s.Cache.Set(ctx, cacheKey, data, s.cacheTTL())
		}
	}
	return av, nil
}

// resolveRemote prefetches busy intervals once per active event type, fanned
// out concurrently since each fetch is an independent network call, then
// resolves the grid per date from the prefetched data. A failed fetch marks
// every cell of that event type as skipped without touching the others.
func (s *Service) resolveRemote(ctx context.Context, mentor models.Mentor, dateFrom, dateTo string) (RangeResult, error) {
	logger := s.logger()

	eventTypes, err := s.EventTypes.GetActiveByMentorID(ctx, mentor.ID)
	if err != nil {
		return RangeResult{}, fmt.Errorf("failed to load event types: %w", err)
	}

	type fetched struct {
		busy []models.BusyInterval
		err  error
	}
	prefetched := make(map[string]*fetched, len(eventTypes))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, et := range eventTypes {
		if et.Hidden {
			continue
		}
		wg.Add(1)
		go func(et models.EventType) {
			defer wg.Done()
			busy, _, err := s.Busy.BusyTimes(ctx, mentor.CalUserID, dateFrom, dateTo, et.ID)
			mu.Lock()
			prefetched[et.ID] = &fetched{busy: busy, err: err}
			mu.Unlock()
		}(et)
	}
	wg.Wait()

	// Superseded or abandoned request: discard whatever arrived.
	if err := ctx.Err(); err != nil {
		return RangeResult{}, err
	}

	loc := utils.LoadLocation(mentor.Timezone)
	resolve := func(ctx context.Context, date string, et models.EventType) ([]models.GridSlot, error) {
		f, ok := prefetched[et.ID]
		if !ok {
			return nil, fmt.Errorf("no busy data for event type %s", et.ID)
		}
		if f.err != nil {
			return nil, f.err
		}
		grid := GenerateSlotGrid(et, s.Grid)
		return ApplyBusyIntervals(grid, date, et, f.busy, loc)
	}

	return AggregateOverRange(ctx, dateFrom, dateTo, eventTypes, resolve, logger)
}

// resolveLocal resolves the mentor's internally tracked patterns, independent
// of any remote calendar.
func (s *Service) resolveLocal(ctx context.Context, mentor models.Mentor, dateFrom, dateTo string) (RangeResult, error) {
	logger := s.logger()

	recurring, err := s.Timeslots.GetRecurring(ctx, mentor.ID)
	if err != nil {
		return RangeResult{}, fmt.Errorf("failed to load recurring slots: %w", err)
	}

	from, err := utils.ParseDate(dateFrom, time.UTC)
	if err != nil {
		return RangeResult{}, err
	}
	to, err := utils.ParseDate(dateTo, time.UTC)
	if err != nil {
		return RangeResult{}, err
	}
	if to.Before(from) {
		return RangeResult{}, fmt.Errorf("dateTo %s is before dateFrom %s", dateTo, dateFrom)
	}

	var result RangeResult
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return RangeResult{}, err
		}
		dateStr := d.Format(utils.DateLayout)

		specific, err := s.Timeslots.GetSpecificByDate(ctx, mentor.ID, dateStr)
		if err != nil {
			result.Skipped++
			logger.Warn("skipping local availability date", zap.String("date", dateStr), zap.Error(err))
			continue
		}
		merged, err := MergeLocalPatterns(recurring, specific, dateStr)
		if err != nil {
			result.Skipped++
			logger.Warn("skipping local availability date", zap.String("date", dateStr), zap.Error(err))
			continue
		}

		day := models.DayAvailability{Date: dateStr}
		for _, slot := range merged {
			day.Slots = append(day.Slots, models.GridSlot{
				Time:      slot.StartTime,
				EndTime:   slot.EndTime,
				Available: slot.IsAvailable,
			})
		}
		result.Days = append(result.Days, day)
	}
	return result, nil
}

// CheckSlot re-resolves a single date/event-type cell and reports whether
// the requested start time is still open. The booking flow calls this right
// before writing (re-check-before-write).
func (s *Service) CheckSlot(ctx context.Context, mentor models.Mentor, eventTypeID, date, startTime string) (bool, error) {
	et, err := s.EventTypes.GetByID(ctx, mentor.ID, eventTypeID)
	if err != nil {
		return false, err
	}
	if et == nil || et.Hidden {
		return false, fmt.Errorf("event type %s not found", eventTypeID)
	}

	if mentor.CalUserID != "" && s.Busy != nil {
		busy, _, err := s.Busy.BusyTimes(ctx, mentor.CalUserID, date, date, et.ID)
		if err != nil {
			return false, fmt.Errorf("busy fetch failed: %w", err)
		}
		loc := utils.LoadLocation(mentor.Timezone)
		slots, err := ApplyBusyIntervals(GenerateSlotGrid(*et, s.Grid), date, *et, busy, loc)
		if err != nil {
			return false, err
		}
		for _, slot := range slots {
			if slot.Time == startTime {
				return slot.Available, nil
			}
		}
		return false, nil
	}

	recurring, err := s.Timeslots.GetRecurring(ctx, mentor.ID)
	if err != nil {
		return false, err
	}
	specific, err := s.Timeslots.GetSpecificByDate(ctx, mentor.ID, date)
	if err != nil {
		return false, err
	}
	merged, err := MergeLocalPatterns(recurring, specific, date)
	if err != nil {
		return false, err
	}
	for _, slot := range merged {
		if slot.StartTime == startTime {
			return slot.IsAvailable, nil
		}
	}
	return false, nil
}

// InvalidateCache drops any cached views for a mentor after their slots or
// bookings change.
func (s *Service) InvalidateCache(ctx context.Context, mentorID string) {
	if s.Cache == nil {
		return
	}
	pattern := fmt.Sprintf(cacheKeyFormat, mentorID, "*", "*")
	iter := s.Cache.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		s.Cache.Del(ctx, iter.Val())
	}
}

func (s *Service) cacheTTL() time.Duration {
	if s.CacheTTL > 0 {
		return s.CacheTTL
	}
	return 2 * time.Minute
}

func (s *Service) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
