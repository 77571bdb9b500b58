package handler

import (
	"net/http"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/stats"
)

// HandleGetSummary returns the dashboard summary for a period
// @Summary Get stats summary
// @Description Totals, per-character breakdown and recent activity for a period
// @Tags stats
// @Produce json
// @Param period query string false "Period (daily, weekly, monthly, yearly, all)"
// @Success 200 {object} domain.StatsSummary
// @Failure 500 {object} ErrorResponse
// @Router /stats/summary [get]
func HandleGetSummary(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := GetOptionalQueryParam(r, "period", domain.PeriodDaily)

		summary, err := svc.GetSummary(r.Context(), period)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSummaryFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Stats summary served", "period", summary.Period)
		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleGetCharacters lists the character roster plus names seen in records
// @Summary List characters
// @Tags stats
// @Produce json
// @Success 200 {array} string
// @Router /characters [get]
func HandleGetCharacters(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Characters(r.Context()))
	}
}
