// Package handler implements the admin and customer menu operations.
// Handlers own no I/O streams of their own: all interaction goes
// through the ui.Console they are constructed with, and all state
// changes go through the shared in-memory catalog plus the
// repositories that persist it.
package handler

import (
	"fmt"
	"strconv"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// movieLine renders a movie the way listings have always shown it.
func movieLine(m model.Movie) string {
	return fmt.Sprintf("Movie: %s | Genre: %s | Duration: %d mins | Rating: %s",
		m.Title, m.Genre, m.Duration, formatFloat(m.Rating))
}

// showLine renders a show with its remaining availability.
func showLine(s model.Show) string {
	return fmt.Sprintf("%s | Show Time: %s | Available: %d/%d",
		s.Movie.Title, s.ShowTime, s.AvailableSeats(), s.TotalSeats)
}

// formatFloat renders ratings and prices without forced decimals, so
// a whole-number price prints as "600" and a rating as "8.5".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
