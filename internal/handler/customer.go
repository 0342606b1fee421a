package handler

import (
	"errors"
	"fmt"
	"os"

	"github.com/iliyamo/movie-ticket-booking/internal/logger"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/ui"
)

// CustomerHandler implements browsing and booking.  Tickets bought
// during the session are held in the handler's list for the rest of
// the run and appended to the bookings log; they are not reloaded on
// a later run.
type CustomerHandler struct {
	console      *ui.Console
	catalog      *model.Catalog
	movies       *repository.MovieRepo
	shows        *repository.ShowRepo
	bookings     *repository.BookingLog
	counter      *model.TicketCounter
	pricePerSeat float64
	tickets      []model.Ticket
}

// NewCustomerHandler constructs a CustomerHandler.  The ticket counter
// is owned by the caller so that ID assignment stays visible at the
// session level rather than hiding in a global.
func NewCustomerHandler(console *ui.Console, catalog *model.Catalog, movies *repository.MovieRepo, shows *repository.ShowRepo, bookings *repository.BookingLog, counter *model.TicketCounter, pricePerSeat float64) *CustomerHandler {
	return &CustomerHandler{
		console:      console,
		catalog:      catalog,
		movies:       movies,
		shows:        shows,
		bookings:     bookings,
		counter:      counter,
		pricePerSeat: pricePerSeat,
	}
}

// Tickets returns the tickets bought this session in creation order.
func (h *CustomerHandler) Tickets() []model.Ticket {
	return h.tickets
}

// ViewMovies prints the movie file verbatim, header included.  It
// reads straight from disk rather than from the in-memory catalog, so
// the customer sees exactly what is persisted.
func (h *CustomerHandler) ViewMovies() error {
	raw, err := h.movies.ReadRaw()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			h.console.Error("No movies available!")
			return nil
		}
		return err
	}
	h.console.Title("\n--- Available Movies ---")
	h.console.Printf("%s", raw)
	return nil
}

// ViewShows lists the in-memory shows with 1-based indices and their
// remaining availability.
func (h *CustomerHandler) ViewShows() {
	h.console.Title("\n--- Available Shows ---")
	if len(h.catalog.Shows) == 0 {
		h.console.Error("No shows available!")
		return
	}
	for i, s := range h.catalog.Shows {
		h.console.Printf("%d. %s\n", i+1, showLine(s))
	}
}

// BookTicket prompts for a seat count and a show selection, books the
// seats on the chosen show and, on success, issues a ticket, appends
// it to the bookings log and rewrites the show file with the updated
// seat count.  On any failure nothing is created and no file changes.
func (h *CustomerHandler) BookTicket() error {
	seats, ok, err := h.console.ReadInt("Enter seats to book: ")
	if err != nil {
		return err
	}
	if !ok || seats < 1 {
		h.console.Error("Invalid seat count!")
		return nil
	}
	if len(h.catalog.Shows) == 0 {
		h.console.Error("No shows available!")
		return nil
	}

	choice, ok, err := h.console.ReadInt("Enter show number: ")
	if err != nil {
		return err
	}
	if !ok || choice < 1 || choice > len(h.catalog.Shows) {
		h.console.Error("Invalid show number!")
		return nil
	}

	chosen := &h.catalog.Shows[choice-1]
	if err := chosen.BookSeat(seats); err != nil {
		h.console.Error("Not enough seats available!")
		return nil
	}

	ticket := model.NewTicket(h.counter.Next(), *chosen, seats, h.pricePerSeat)
	h.tickets = append(h.tickets, ticket)
	h.console.Success("Booking Successful!")
	h.printTicket(ticket)

	if err := h.bookings.Append(ticket); err != nil {
		return err
	}
	if err := h.shows.Save(h.catalog.Shows); err != nil {
		return err
	}
	logger.Log.Info("ticket booked",
		"id", ticket.ID, "movie", ticket.Show.Movie.Title, "seats", seats, "price", ticket.Price)
	return nil
}

// ViewBookings prints every ticket bought this session in creation
// order.  Bookings from earlier runs live only in the log file and
// are not shown.
func (h *CustomerHandler) ViewBookings() {
	if len(h.tickets) == 0 {
		h.console.Error("No bookings yet!")
		return
	}
	for _, t := range h.tickets {
		h.printTicket(t)
	}
}

// printTicket renders the ticket block shown after a booking and in
// the bookings listing.
func (h *CustomerHandler) printTicket(t model.Ticket) {
	h.console.Title(fmt.Sprintf("\n=== Ticket #%d ===", t.ID))
	h.console.Printf("Movie: %s\n", t.Show.Movie.Title)
	h.console.Printf("Showtime: %s\n", t.Show.ShowTime)
	h.console.Printf("Seats: %d | Total Price: ₹%s\n", t.SeatCount, formatFloat(t.Price))
}
