package availability

import (
	"context"
	"errors"
	"testing"

	"mentorhub/models"

	"go.uber.org/zap"
)

func okResolver(slots []models.GridSlot) CellResolver {
	return func(ctx context.Context, date string, et models.EventType) ([]models.GridSlot, error) {
		return slots, nil
	}
}

func TestAggregateOverRange_InclusiveAscending(t *testing.T) {
	ets := []models.EventType{{ID: "et-1", Length: 30}}
	slots := []models.GridSlot{{Time: "09:00", EndTime: "09:30", EventTypeID: "et-1", Available: true}}

	result, err := AggregateOverRange(context.Background(), "2024-03-04", "2024-03-06", ets, okResolver(slots), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDates := []string{"2024-03-04", "2024-03-05", "2024-03-06"}
	if len(result.Days) != len(wantDates) {
		t.Fatalf("expected %d days, got %d", len(wantDates), len(result.Days))
	}
	for i, d := range result.Days {
		if d.Date != wantDates[i] {
			t.Fatalf("day %d: expected %s, got %s", i, wantDates[i], d.Date)
		}
	}
	if result.Skipped != 0 {
		t.Fatalf("expected no skipped cells, got %d", result.Skipped)
	}
}

func TestAggregateOverRange_SingleDateEqualsRangeOfOne(t *testing.T) {
	ets := []models.EventType{{ID: "et-1", Length: 30}}
	slots := []models.GridSlot{{Time: "09:00", EndTime: "09:30", EventTypeID: "et-1", Available: true}}

	result, err := AggregateOverRange(context.Background(), "2024-03-04", "2024-03-04", ets, okResolver(slots), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Days) != 1 || result.Days[0].Date != "2024-03-04" {
		t.Fatalf("range of one should produce exactly that date, got %+v", result.Days)
	}
	if len(result.Days[0].Slots) != 1 {
		t.Fatalf("expected the resolver's slots verbatim, got %+v", result.Days[0].Slots)
	}
}

func TestAggregateOverRange_FaultIsolation(t *testing.T) {
	ets := []models.EventType{
		{ID: "ok", Length: 30},
		{ID: "broken", Length: 30},
	}
	resolve := func(ctx context.Context, date string, et models.EventType) ([]models.GridSlot, error) {
		if et.ID == "broken" {
			return nil, errors.New("upstream unavailable")
		}
		return []models.GridSlot{{Time: "09:00", EndTime: "09:30", EventTypeID: et.ID, Available: true}}, nil
	}

	result, err := AggregateOverRange(context.Background(), "2024-03-04", "2024-03-05", ets, resolve, zap.NewNop())
	if err != nil {
		t.Fatalf("failing cells must not abort the range: %v", err)
	}

	if result.Skipped != 2 {
		t.Fatalf("expected 2 skipped cells (one per date), got %d", result.Skipped)
	}
	for _, day := range result.Days {
		if len(day.Slots) != 1 || day.Slots[0].EventTypeID != "ok" {
			t.Fatalf("healthy cell missing on %s: %+v", day.Date, day.Slots)
		}
	}
}

func TestAggregateOverRange_HiddenEventTypesSkipped(t *testing.T) {
	ets := []models.EventType{
		{ID: "visible", Length: 30},
		{ID: "hidden", Length: 30, Hidden: true},
	}
	var resolvedFor []string
	resolve := func(ctx context.Context, date string, et models.EventType) ([]models.GridSlot, error) {
		resolvedFor = append(resolvedFor, et.ID)
		return nil, nil
	}

	if _, err := AggregateOverRange(context.Background(), "2024-03-04", "2024-03-04", ets, resolve, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolvedFor) != 1 || resolvedFor[0] != "visible" {
		t.Fatalf("hidden event types should not be resolved, got %v", resolvedFor)
	}
}

func TestAggregateOverRange_EmptyDayStillAppears(t *testing.T) {
	ets := []models.EventType{{ID: "et-1", Length: 30}}

	result, err := AggregateOverRange(context.Background(), "2024-03-04", "2024-03-04", ets, okResolver(nil), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Days) != 1 {
		t.Fatalf("fully unavailable day must still appear, got %+v", result.Days)
	}
	if len(result.Days[0].Slots) != 0 {
		t.Fatalf("expected no slots, got %+v", result.Days[0].Slots)
	}
}

func TestAggregateOverRange_InvertedRange(t *testing.T) {
	ets := []models.EventType{{ID: "et-1", Length: 30}}
	if _, err := AggregateOverRange(context.Background(), "2024-03-06", "2024-03-04", ets, okResolver(nil), zap.NewNop()); err == nil {
		t.Fatalf("expected error for dateTo before dateFrom")
	}
}

func TestAggregateOverRange_CancelledContext(t *testing.T) {
	ets := []models.EventType{{ID: "et-1", Length: 30}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := AggregateOverRange(ctx, "2024-03-04", "2024-03-06", ets, okResolver(nil), zap.NewNop()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
