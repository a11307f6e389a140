// File: services/calcom/client.go
package calcom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mentorhub/models"
	"mentorhub/utils"

	"go.uber.org/zap"
)

// Client is a thin wrapper over the Cal.com v1 API. Requests are
// context-aware so an abandoned reconciliation cancels its in-flight
// fetches; the client itself imposes no timeout beyond the HTTP client's.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Logger  *zap.Logger
}

// NewClient constructs a Cal.com client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Logger:  utils.GetLogger(),
	}
}

type availabilityResponse struct {
	Busy     []models.BusyInterval `json:"busy"`
	TimeZone string                `json:"timeZone"`
}

// BusyTimes fetches the remote calendar's busy intervals for a user over a
// date range. Implements availability.BusyFetcher.
func (c *Client) BusyTimes(ctx context.Context, calUserID, dateFrom, dateTo, eventTypeID string) ([]models.BusyInterval, string, error) {
	q := url.Values{}
	q.Set("apiKey", c.APIKey)
	q.Set("userId", calUserID)
	q.Set("dateFrom", dateFrom)
	q.Set("dateTo", dateTo)
	if eventTypeID != "" {
		q.Set("eventTypeId", eventTypeID)
	}

	var resp availabilityResponse
	if err := c.get(ctx, "/availability", q, &resp); err != nil {
		return nil, "", err
	}
	return resp.Busy, resp.TimeZone, nil
}

type remoteEventType struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Length   int     `json:"length"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Hidden   bool    `json:"hidden"`
}

type eventTypesResponse struct {
	EventTypes []remoteEventType `json:"event_types"`
}

// EventTypes fetches the remote event-type catalog for import into the local
// one.
func (c *Client) EventTypes(ctx context.Context, calUserID string) ([]models.EventType, error) {
	q := url.Values{}
	q.Set("apiKey", c.APIKey)
	q.Set("userId", calUserID)

	var resp eventTypesResponse
	if err := c.get(ctx, "/event-types", q, &resp); err != nil {
		return nil, err
	}

	out := make([]models.EventType, 0, len(resp.EventTypes))
	for _, ret := range resp.EventTypes {
		out = append(out, models.EventType{
			ID:       strconv.Itoa(ret.ID),
			Title:    ret.Title,
			Length:   ret.Length,
			Price:    ret.Price,
			Currency: ret.Currency,
			Hidden:   ret.Hidden,
		})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("calcom: failed to build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("calcom: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.Logger.Warn("calcom: non-200 response",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("calcom: unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("calcom: failed to decode response: %w", err)
	}
	return nil
}
