package availability

import (
	"sort"

	"mentorhub/models"
	"mentorhub/utils"
)

// MergeLocalPatterns resolves a mentor's own slot set for exactly one date.
// It starts from the recurring slots whose weekday matches targetDate, then
// overlays specific-date slots for that date: a specific slot replaces any
// recurring slot sharing the same start/end window, as the more concrete
// signal. With no entries at all the date is fully unavailable, which is a
// valid result, not an error. Pure and idempotent over its inputs.
func MergeLocalPatterns(recurring, specific []models.TimeSlot, targetDate string) ([]models.TimeSlot, error) {
	weekday, err := utils.WeekdayName(targetDate)
	if err != nil {
		return nil, err
	}

	resolved := make([]models.TimeSlot, 0, len(recurring))
	index := make(map[string]int)

	for _, slot := range recurring {
		if slot.Type != models.SlotRecurring || slot.Day != weekday {
			continue
		}
		slot.Date = targetDate
		index[slot.StartTime+"-"+slot.EndTime] = len(resolved)
		resolved = append(resolved, slot)
	}

	for _, slot := range specific {
		if slot.Type != models.SlotSpecific || slot.Date != targetDate {
			continue
		}
		key := slot.StartTime + "-" + slot.EndTime
		if i, ok := index[key]; ok {
			resolved[i] = slot
		} else {
			index[key] = len(resolved)
			resolved = append(resolved, slot)
		}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		if resolved[i].StartTime == resolved[j].StartTime {
			return resolved[i].EndTime < resolved[j].EndTime
		}
		return resolved[i].StartTime < resolved[j].StartTime
	})
	return resolved, nil
}
