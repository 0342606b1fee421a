package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketCounterStartsAt1000AndIncrements(t *testing.T) {
	c := NewTicketCounter()
	assert.Equal(t, 1000, c.Next())
	assert.Equal(t, 1001, c.Next())
	assert.Equal(t, 1002, c.Next())
}

func TestTicketCountersAreIndependent(t *testing.T) {
	// A fresh counter restarts at the seed: the sequence is
	// process-lifetime only and never survives a restart.
	a := NewTicketCounter()
	a.Next()
	a.Next()

	b := NewTicketCounter()
	assert.Equal(t, 1000, b.Next())
}

func TestNewTicketComputesPrice(t *testing.T) {
	show := Show{
		Movie:      Movie{Title: "Dune", Genre: "Sci-Fi", Duration: 155, Rating: 8.5},
		ShowTime:   "2025-11-03 18:30",
		TotalSeats: 10,
	}
	ticket := NewTicket(1000, show, 3, 200.0)

	assert.Equal(t, 1000, ticket.ID)
	assert.Equal(t, 3, ticket.SeatCount)
	assert.Equal(t, 600.0, ticket.Price)
	assert.Equal(t, "Dune", ticket.Show.Movie.Title)
}

func TestTicketSnapshotsShow(t *testing.T) {
	show := Show{Movie: Movie{Title: "Dune"}, TotalSeats: 10}
	ticket := NewTicket(1000, show, 2, 200.0)

	// Later mutations of the show must not leak into the ticket.
	show.BookedSeats = 9
	assert.Equal(t, 0, ticket.Show.BookedSeats)
}
