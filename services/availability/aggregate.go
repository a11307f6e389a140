package availability

import (
	"context"
	"fmt"
	"time"

	"mentorhub/models"
	"mentorhub/utils"

	"go.uber.org/zap"
)

// CellResolver resolves one date/event-type cell into finalized grid slots.
type CellResolver func(ctx context.Context, date string, et models.EventType) ([]models.GridSlot, error)

// RangeResult is the output of AggregateOverRange. Skipped counts cells
// dropped due to resolver errors; days with zero slots still appear in Days
// so "fully unavailable" stays distinct from "dropped".
type RangeResult struct {
	Days    []models.DayAvailability
	Skipped int
}

// AggregateOverRange iterates every calendar date in [dateFrom, dateTo]
// inclusive, ascending, and resolves one cell per active (non-hidden) event
// type. A failing cell is logged, counted and skipped; it never aborts
// sibling cells or dates. Within a date, slots are concatenated in event-type
// enumeration order.
func AggregateOverRange(ctx context.Context, dateFrom, dateTo string, eventTypes []models.EventType, resolve CellResolver, logger *zap.Logger) (RangeResult, error) {
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
		day := models.DayAvailability{Date: dateStr}

		for _, et := range eventTypes {
			if et.Hidden {
				continue
			}
			slots, err := resolve(ctx, dateStr, et)
			if err != nil {
				result.Skipped++
				logger.Warn("skipping availability cell",
					zap.String("date", dateStr),
					zap.String("eventTypeId", et.ID),
					zap.Error(err))
				continue
			}
			day.Slots = append(day.Slots, slots...)
		}
		result.Days = append(result.Days, day)
	}
	return result, nil
}
