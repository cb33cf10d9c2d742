package shift

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/swipeschedule/ss_backendl/internal/pkg/response"
)

// ExportShiftsHandler serves GET /api/shifts/export?from=&to= as an xlsx
// report over the same window semantics as the listing endpoint.
func ExportShiftsHandler(store Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := parseBound(r.URL.Query().Get("from"))
		to := parseBound(r.URL.Query().Get("to"))

		shifts, err := store.ListShifts(r.Context(), from, to)
		if err != nil {
			log.Printf("Store query error (shifts export): %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch shifts")
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		const sheet = "Sheet1"
		header := []interface{}{"ID", "Start", "End", "Site", "Position", "Worker", "Wage", "Earnings", "Origin"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			log.Printf("Export error (header row): %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
			return
		}

		for i, s := range shifts {
			row := []interface{}{
				s.ID,
				s.Start.Format(time.RFC3339),
				s.End.Format(time.RFC3339),
				s.SiteID,
				s.PositionID,
				s.WorkerID,
				s.Wage,
				s.Earnings,
				s.Origin,
			}
			cell := fmt.Sprintf("A%d", i+2)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				log.Printf("Export error (row %d): %v", i, err)
				response.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
				return
			}
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="shifts.xlsx"`)
		if err := f.Write(w); err != nil {
			log.Printf("Export error (write): %v", err)
		}
	}
}
