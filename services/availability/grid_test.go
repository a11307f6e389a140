package availability

import (
	"testing"

	"mentorhub/models"
)

func TestGenerateSlotGrid_CountMatchesWindow(t *testing.T) {
	et := models.EventType{ID: "et-1", Length: 30}
	cfg := GridConfig{WindowStart: 9 * 60, WindowEnd: 18 * 60, Step: 30}

	slots := GenerateSlotGrid(et, cfg)

	want := (cfg.WindowEnd - cfg.WindowStart) / cfg.Step // 18 slots
	if len(slots) != want {
		t.Fatalf("expected %d slots, got %d", want, len(slots))
	}
	if slots[0].Time != "09:00" || slots[0].EndTime != "09:30" {
		t.Fatalf("unexpected first slot: %+v", slots[0])
	}
	last := slots[len(slots)-1]
	if last.Time != "17:30" {
		t.Fatalf("expected last slot at 17:30, got %s", last.Time)
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("slot %s should start available", s.Time)
		}
		if s.EventTypeID != "et-1" {
			t.Fatalf("slot %s missing event type tag", s.Time)
		}
	}
}

func TestGenerateSlotGrid_LongSessionOverflowsWindow(t *testing.T) {
	et := models.EventType{ID: "et-1", Length: 60}
	cfg := GridConfig{WindowStart: 9 * 60, WindowEnd: 18 * 60, Step: 30}

	slots := GenerateSlotGrid(et, cfg)

	// The grid is start-driven: a 60-minute session at 17:30 still appears
	// and ends past the window.
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	last := slots[len(slots)-1]
	if last.Time != "17:30" || last.EndTime != "18:30" {
		t.Fatalf("unexpected last slot: %+v", last)
	}
}

func TestGenerateSlotGrid_ClipOverflow(t *testing.T) {
	et := models.EventType{ID: "et-1", Length: 60}
	cfg := GridConfig{WindowStart: 9 * 60, WindowEnd: 18 * 60, Step: 30, ClipOverflow: true}

	slots := GenerateSlotGrid(et, cfg)

	// Clipping drops the 17:30 start; the 17:00 slot ends exactly at 18:00.
	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	last := slots[len(slots)-1]
	if last.Time != "17:00" || last.EndTime != "18:00" {
		t.Fatalf("unexpected last slot: %+v", last)
	}
}

func TestGenerateSlotGrid_DegenerateInputs(t *testing.T) {
	cases := []struct {
		name string
		et   models.EventType
		cfg  GridConfig
	}{
		{"zero step", models.EventType{Length: 30}, GridConfig{WindowStart: 540, WindowEnd: 1080}},
		{"zero length", models.EventType{}, GridConfig{WindowStart: 540, WindowEnd: 1080, Step: 30}},
		{"inverted window", models.EventType{Length: 30}, GridConfig{WindowStart: 1080, WindowEnd: 540, Step: 30}},
		{"empty window", models.EventType{Length: 30}, GridConfig{WindowStart: 540, WindowEnd: 540, Step: 30}},
	}
	for _, tc := range cases {
		if slots := GenerateSlotGrid(tc.et, tc.cfg); len(slots) != 0 {
			t.Fatalf("%s: expected no slots, got %d", tc.name, len(slots))
		}
	}
}
