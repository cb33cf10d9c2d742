package shift

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/swipeschedule/ss_backendl/internal/pkg/response"
	"github.com/swipeschedule/ss_backendl/models"
)

// Lister is the read side of the shift store.
type Lister interface {
	ListShifts(ctx context.Context, from, to *time.Time) ([]models.Shift, error)
}

// Date layouts accepted for the from/to query parameters.
var boundLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseBound turns a query parameter into a time bound. Anything
// unparseable is treated as absent, never rejected.
func parseBound(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range boundLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// GetShiftsHandler serves GET /api/shifts?from=&to=.
func GetShiftsHandler(store Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := parseBound(r.URL.Query().Get("from"))
		to := parseBound(r.URL.Query().Get("to"))

		shifts, err := store.ListShifts(r.Context(), from, to)
		if err != nil {
			log.Printf("Store query error (shifts): %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch shifts")
			return
		}

		if shifts == nil {
			shifts = []models.Shift{}
		}
		response.RespondWithJSON(w, http.StatusOK, shifts)
	}
}
