// Package shiftclient is the client-side shift directory: it fetches
// the normalized shift list from the backend and keeps the latest
// response as current state for the calendar views.
package shiftclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/swipeschedule/ss_backendl/models"
)

type Client struct {
	baseURL string
	httpc   *http.Client

	mu     sync.Mutex
	shifts []models.Shift
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchShifts queries /api/shifts for the window and retains the result
// as current state. Requests are not de-duplicated or cancelled: when
// fetches overlap, whichever response lands last wins.
func (c *Client) FetchShifts(ctx context.Context, w Window) ([]models.Shift, error) {
	q := url.Values{}
	if !w.From.IsZero() {
		q.Set("from", w.From.UTC().Format(time.RFC3339))
	}
	if !w.To.IsZero() {
		q.Set("to", w.To.UTC().Format(time.RFC3339))
	}

	endpoint := c.baseURL + "/api/shifts"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch shifts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return nil, fmt.Errorf("fetch shifts: %s", apiErr.Error)
	}

	var shifts []models.Shift
	if err := json.NewDecoder(resp.Body).Decode(&shifts); err != nil {
		return nil, fmt.Errorf("decode shifts: %w", err)
	}

	c.mu.Lock()
	c.shifts = shifts
	c.mu.Unlock()
	return shifts, nil
}

// FetchMonth fetches the shifts of a "YYYY-MM" month.
func (c *Client) FetchMonth(ctx context.Context, month string) ([]models.Shift, error) {
	return c.FetchShifts(ctx, MonthWindow(month))
}

// Shifts returns the current state: the most recently landed response.
func (c *Client) Shifts() []models.Shift {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Shift, len(c.shifts))
	copy(out, c.shifts)
	return out
}

// ByDate groups current shifts by their start date (YYYY-MM-DD).
func (c *Client) ByDate() map[string][]models.Shift {
	grouped := make(map[string][]models.Shift)
	for _, s := range c.Shifts() {
		key := s.Start.Format("2006-01-02")
		grouped[key] = append(grouped[key], s)
	}
	return grouped
}

// DatesWithShifts lists the distinct days of month that have shifts,
// ascending. Used to mark the calendar.
func (c *Client) DatesWithShifts() []int {
	seen := make(map[int]struct{})
	for _, s := range c.Shifts() {
		seen[s.Start.Day()] = struct{}{}
	}
	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// ByOrigin filters current shifts by origin tag.
func (c *Client) ByOrigin(origin string) []models.Shift {
	var out []models.Shift
	for _, s := range c.Shifts() {
		if s.Origin == origin {
			out = append(out, s)
		}
	}
	return out
}

// ByDateAndOrigin filters current shifts by start date and origin.
func (c *Client) ByDateAndOrigin(date, origin string) []models.Shift {
	var out []models.Shift
	for _, s := range c.Shifts() {
		if s.Origin == origin && s.Start.Format("2006-01-02") == date {
			out = append(out, s)
		}
	}
	return out
}
