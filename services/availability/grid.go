package availability

import (
	"mentorhub/models"
	"mentorhub/utils"
)

// GridConfig controls slot-grid generation. Window bounds and step are
// minutes; they apply to every day of the range, weekday or weekend.
type GridConfig struct {
	WindowStart int // minutes from midnight, e.g. 540 for 09:00
	WindowEnd   int // minutes from midnight, e.g. 1080 for 18:00
	Step        int // grid step in minutes
	// ClipOverflow drops slots whose end (start + event length) would pass
	// WindowEnd. Off by default: a 60-minute session starting 17:30 against
	// an 18:00 window is generated and may run past the window.
	ClipOverflow bool
}

// DefaultGridConfig returns the 09:00-18:00 window with a 30-minute step.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		WindowStart: 9 * 60,
		WindowEnd:   18 * 60,
		Step:        30,
	}
}

// GenerateSlotGrid enumerates the provisional slot grid for one event type.
// Every slot starts available; ApplyBusyIntervals finalizes the flags. The
// grid is identical for every date, so the date is not a parameter here —
// the caller tags the result with the date it resolves.
func GenerateSlotGrid(et models.EventType, cfg GridConfig) []models.GridSlot {
	if cfg.Step <= 0 || et.Length <= 0 || cfg.WindowEnd <= cfg.WindowStart {
		return nil
	}

	var slots []models.GridSlot
	for start := cfg.WindowStart; start < cfg.WindowEnd; start += cfg.Step {
		end := start + et.Length
		if cfg.ClipOverflow && end > cfg.WindowEnd {
			break
		}
		slots = append(slots, models.GridSlot{
			Time:        utils.FormatClock(start),
			EndTime:     utils.FormatClock(end),
			EventTypeID: et.ID,
			Available:   true,
		})
	}
	return slots
}
