package availability

import (
	"reflect"
	"testing"

	"mentorhub/models"
)

func TestMergeLocalPatterns_SpecificOverridesRecurring(t *testing.T) {
	// 2024-03-04 is a Monday.
	recurring := []models.TimeSlot{
		{ID: "r1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", IsAvailable: true, Type: models.SlotRecurring},
		{ID: "r2", Day: "Monday", StartTime: "10:00", EndTime: "11:00", IsAvailable: true, Type: models.SlotRecurring},
	}
	specific := []models.TimeSlot{
		{ID: "s1", Date: "2024-03-04", StartTime: "09:00", EndTime: "10:00", IsAvailable: false, Type: models.SlotSpecific},
	}

	merged, err := MergeLocalPatterns(recurring, specific, "2024-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(merged) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(merged))
	}
	if merged[0].ID != "s1" || merged[0].IsAvailable {
		t.Fatalf("specific slot should replace recurring 09:00-10:00, got %+v", merged[0])
	}
	if merged[1].ID != "r2" || !merged[1].IsAvailable {
		t.Fatalf("untouched recurring slot changed: %+v", merged[1])
	}
}

func TestMergeLocalPatterns_WeekdayFilter(t *testing.T) {
	recurring := []models.TimeSlot{
		{ID: "mon", Day: "Monday", StartTime: "09:00", EndTime: "10:00", IsAvailable: true, Type: models.SlotRecurring},
		{ID: "tue", Day: "Tuesday", StartTime: "09:00", EndTime: "10:00", IsAvailable: true, Type: models.SlotRecurring},
	}

	merged, err := MergeLocalPatterns(recurring, nil, "2024-03-04") // Monday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(merged) != 1 || merged[0].ID != "mon" {
		t.Fatalf("expected only the Monday slot, got %+v", merged)
	}
	if merged[0].Date != "2024-03-04" {
		t.Fatalf("resolved slot should carry the target date, got %q", merged[0].Date)
	}
}

func TestMergeLocalPatterns_SpecificOtherDateIgnored(t *testing.T) {
	specific := []models.TimeSlot{
		{ID: "s1", Date: "2024-03-05", StartTime: "09:00", EndTime: "10:00", IsAvailable: true, Type: models.SlotSpecific},
	}

	merged, err := MergeLocalPatterns(nil, specific, "2024-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(merged) != 0 {
		t.Fatalf("specific slot for another date leaked in: %+v", merged)
	}
}

func TestMergeLocalPatterns_EmptyInputsValid(t *testing.T) {
	merged, err := MergeLocalPatterns(nil, nil, "2024-03-04")
	if err != nil {
		t.Fatalf("fully unavailable date is a valid result, got error: %v", err)
	}
	if len(merged) != 0 {
		t.Fatalf("expected no slots, got %+v", merged)
	}
}

func TestMergeLocalPatterns_SortedAndIdempotent(t *testing.T) {
	recurring := []models.TimeSlot{
		{ID: "r2", Day: "Monday", StartTime: "14:00", EndTime: "15:00", IsAvailable: true, Type: models.SlotRecurring},
		{ID: "r1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", IsAvailable: true, Type: models.SlotRecurring},
	}
	specific := []models.TimeSlot{
		{ID: "s1", Date: "2024-03-04", StartTime: "11:00", EndTime: "12:00", IsAvailable: true, Type: models.SlotSpecific},
	}

	first, err := MergeLocalPatterns(recurring, specific, "2024-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].StartTime > first[i].StartTime {
			t.Fatalf("output not sorted by start time: %+v", first)
		}
	}

	second, err := MergeLocalPatterns(recurring, specific, "2024-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("merge is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestMergeLocalPatterns_BadDate(t *testing.T) {
	if _, err := MergeLocalPatterns(nil, nil, "04/03/2024"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
