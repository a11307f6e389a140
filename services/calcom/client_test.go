package calcom

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		HTTP:    srv.Client(),
		Logger:  zap.NewNop(),
	}
}

func TestBusyTimes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/availability" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("apiKey") != "test-key" || q.Get("userId") != "42" {
			t.Fatalf("missing credentials in query: %v", q)
		}
		if q.Get("dateFrom") != "2024-03-04" || q.Get("dateTo") != "2024-03-05" {
			t.Fatalf("date range not forwarded: %v", q)
		}
		if q.Get("eventTypeId") != "7" {
			t.Fatalf("event type not forwarded: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"busy": [{"start": "2024-03-04T09:15:00Z", "end": "2024-03-04T09:45:00Z"}],
			"timeZone": "Europe/Berlin"
		}`))
	}))
	defer srv.Close()

	busy, tz, err := testClient(srv).BusyTimes(context.Background(), "42", "2024-03-04", "2024-03-05", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(busy) != 1 || busy[0].Start != "2024-03-04T09:15:00Z" {
		t.Fatalf("unexpected busy intervals: %+v", busy)
	}
	if tz != "Europe/Berlin" {
		t.Fatalf("unexpected timezone %q", tz)
	}
}

func TestBusyTimes_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, _, err := testClient(srv).BusyTimes(context.Background(), "42", "2024-03-04", "2024-03-04", ""); err == nil {
		t.Fatalf("expected error for 502 response")
	}
}

func TestEventTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/event-types" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"event_types": [
				{"id": 7, "title": "Intro call", "length": 30, "price": 0, "currency": "usd", "hidden": false},
				{"id": 8, "title": "Deep dive", "length": 60, "price": 50, "currency": "usd", "hidden": true}
			]
		}`))
	}))
	defer srv.Close()

	ets, err := testClient(srv).EventTypes(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ets) != 2 {
		t.Fatalf("expected 2 event types, got %d", len(ets))
	}
	if ets[0].ID != "7" || ets[0].Length != 30 {
		t.Fatalf("remote IDs should map to strings: %+v", ets[0])
	}
	if !ets[1].Hidden {
		t.Fatalf("hidden flag lost on import: %+v", ets[1])
	}
}

func TestBusyTimes_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"busy": []}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := testClient(srv).BusyTimes(ctx, "42", "2024-03-04", "2024-03-04", ""); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
