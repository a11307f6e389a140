package availability

import (
	"fmt"
	"time"

	"mentorhub/models"
	"mentorhub/utils"
)

type busySpan struct {
	start time.Time
	end   time.Time
}

// ApplyBusyIntervals finalizes the availability flags of a provisional grid
// against remote busy intervals. Slot timestamps are resolved by combining
// date and the slot's "HH:MM" start in loc; a slot is blocked when it
// overlaps any busy interval under the half-open rule
// slotStart < busyEnd && slotEnd > busyStart, so touching endpoints do not
// block. Any unparseable date or timestamp fails the whole cell; the caller
// drops it and resolves sibling cells normally.
func ApplyBusyIntervals(slots []models.GridSlot, date string, et models.EventType, busy []models.BusyInterval, loc *time.Location) ([]models.GridSlot, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := utils.ParseDate(date, loc)
	if err != nil {
		return nil, err
	}

	spans := make([]busySpan, 0, len(busy))
	for _, b := range busy {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid busy start %q: %w", b.Start, err)
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			return nil, fmt.Errorf("invalid busy end %q: %w", b.End, err)
		}
		spans = append(spans, busySpan{start: start, end: end})
	}

	out := make([]models.GridSlot, len(slots))
	for i, slot := range slots {
		out[i] = slot

		startMin, err := utils.ParseClock(slot.Time)
		if err != nil {
			return nil, err
		}
		slotStart := day.Add(time.Duration(startMin) * time.Minute)
		slotEnd := slotStart.Add(time.Duration(et.Length) * time.Minute)

		for _, sp := range spans {
			if slotStart.Before(sp.end) && slotEnd.After(sp.start) {
				out[i].Available = false
				break
			}
		}
	}
	return out, nil
}
