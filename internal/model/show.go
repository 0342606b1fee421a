package model

import "errors"

// ErrNotEnoughSeats is returned by BookSeat when a booking would push
// the booked count past the show's capacity.  Callers should report
// the failure to the user and leave all state untouched.
var ErrNotEnoughSeats = errors.New("not enough seats available")

// Show represents a scheduled screening of a movie.  The movie is
// embedded by value: a show snapshots the catalog entry at creation
// time and does not track later catalog edits.
//
// Fields:
//  Movie       – snapshot of the movie being screened.
//  ShowTime    – free-text timestamp (e.g. "2025-11-03 18:30").
//  TotalSeats  – seating capacity of the screening.
//  BookedSeats – seats sold so far; never exceeds TotalSeats.
type Show struct {
	Movie       Movie  // embedded copy, not a live reference
	ShowTime    string // shows.txt column 2
	TotalSeats  int    // shows.txt column 3
	BookedSeats int    // shows.txt column 4
}

// BookSeat reserves count seats on the show.  Every mutation of the
// seat inventory must go through it so that BookedSeats <= TotalSeats
// holds at all times.  On a capacity violation the show is left
// unchanged and ErrNotEnoughSeats is returned.
func (s *Show) BookSeat(count int) error {
	if s.BookedSeats+count > s.TotalSeats {
		return ErrNotEnoughSeats
	}
	s.BookedSeats += count
	return nil
}

// AvailableSeats returns the number of seats still open for sale.
func (s *Show) AvailableSeats() int {
	return s.TotalSeats - s.BookedSeats
}
