package repository

import (
	"fmt"
	"os"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// BookingLog appends sold tickets to the bookings file (bookings.txt
// by default).  Unlike the catalog files the log is append-only:
// existing lines are never rewritten, and tickets are never loaded
// back into memory on a later run.
type BookingLog struct {
	path string
}

// NewBookingLog constructs a BookingLog persisting to the given path.
func NewBookingLog(path string) *BookingLog {
	return &BookingLog{path: path}
}

// Append writes one ticket line to the end of the log.  The header is
// written first only when the file is missing or currently empty, so
// the log keeps a single header across all runs.
func (l *BookingLog) Append(t model.Ticket) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		if _, err := fmt.Fprintln(f, bookingHeader); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(f, "%d,%s,%s,%d,%s\n",
		t.ID, t.Show.Movie.Title, t.Show.ShowTime, t.SeatCount, formatFloat(t.Price))
	return err
}
