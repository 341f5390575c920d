package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/iho/ledgerlens/internal/adapter/http/dto"
	"github.com/iho/ledgerlens/internal/domain"
	"github.com/iho/ledgerlens/internal/usecase"
)

const dateLayout = "2006-01-02"

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCurrencyNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCategoryLevel):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parsePeriod reads the start and end query parameters (YYYY-MM-DD).
// Missing end defaults to today; missing start to January 1st of the
// end year.
func parsePeriod(r *http.Request) (usecase.Period, error) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return usecase.Period{}, fmt.Errorf("invalid end date %q: %w", raw, err)
		}
		end = parsed
	}

	start := time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return usecase.Period{}, fmt.Errorf("invalid start date %q: %w", raw, err)
		}
		start = parsed
	}

	if end.Before(start) {
		return usecase.Period{}, fmt.Errorf("end date %s is before start date %s",
			end.Format(dateLayout), start.Format(dateLayout))
	}

	return usecase.Period{Start: start, End: end}, nil
}
