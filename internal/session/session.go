// Package session drives the menu loop.  A session picks a role once
// at startup and then dispatches that role's numbered menu until the
// exit option is chosen.  There is no role switching within a run.
package session

import (
	"errors"
	"io"

	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/logger"
	"github.com/iliyamo/movie-ticket-booking/internal/ui"
)

// Role selects which menu the session runs.  The set is closed: there
// are exactly two roles and they are resolved once at session start.
type Role int

const (
	RoleAdmin Role = iota + 1
	RoleCustomer
)

// Session owns the console and the two role handlers and runs the
// menu loop for whichever role the user picks.
type Session struct {
	console  *ui.Console
	admin    *handler.AdminHandler
	customer *handler.CustomerHandler

	// inputDone is set when an operation hits end of input, so the
	// menu loop stops instead of spinning on an exhausted reader.
	inputDone bool
}

// New constructs a Session over the given console and handlers.
func New(console *ui.Console, admin *handler.AdminHandler, customer *handler.CustomerHandler) *Session {
	return &Session{console: console, admin: admin, customer: customer}
}

// Run prompts for a role and loops its menu until the exit option is
// chosen.  Exhausted input ends the session as if exit were chosen.
// Any other failure inside an operation is logged and reported, and
// the loop continues: no failure is fatal to the session.
func (s *Session) Run() error {
	s.console.Println("Choose Mode:")
	s.console.Println("1. Admin")
	s.console.Println("2. Customer")
	mode, _, err := s.console.ReadInt("Choice: ")
	if err != nil {
		return nil
	}
	// Anything other than 1 runs the customer menu.
	if Role(mode) == RoleAdmin {
		return s.runAdmin()
	}
	return s.runCustomer()
}

// runAdmin loops the admin menu: catalog and schedule management.
func (s *Session) runAdmin() error {
	for {
		s.console.Title("\n=== Admin Menu ===")
		s.console.Println("1. Add Movie")
		s.console.Println("2. Remove Movie")
		s.console.Println("3. Add Show")
		s.console.Println("4. Exit")
		choice, ok, err := s.console.ReadInt("Enter choice: ")
		if err != nil {
			return nil
		}
		if !ok {
			s.console.Error("Invalid choice!")
			continue
		}
		switch choice {
		case 1:
			s.dispatch(s.admin.AddMovie())
		case 2:
			s.dispatch(s.admin.RemoveMovie())
		case 3:
			s.dispatch(s.admin.AddShow())
		case 4:
			s.console.Println("Exiting Admin Panel...")
			return nil
		default:
			s.console.Error("Invalid choice!")
		}
		if s.inputDone {
			return nil
		}
	}
}

// runCustomer loops the customer menu: browsing and booking.
func (s *Session) runCustomer() error {
	for {
		s.console.Title("\n=== Customer Menu ===")
		s.console.Println("1. View Movies")
		s.console.Println("2. View Shows")
		s.console.Println("3. Book Ticket")
		s.console.Println("4. View My Tickets")
		s.console.Println("5. Exit")
		choice, ok, err := s.console.ReadInt("Enter choice: ")
		if err != nil {
			return nil
		}
		if !ok {
			s.console.Error("Invalid choice!")
			continue
		}
		switch choice {
		case 1:
			s.dispatch(s.customer.ViewMovies())
		case 2:
			s.customer.ViewShows()
		case 3:
			s.dispatch(s.customer.BookTicket())
		case 4:
			s.customer.ViewBookings()
		case 5:
			s.console.Println("Thank you for using Movie Booking System!")
			return nil
		default:
			s.console.Error("Invalid choice!")
		}
		if s.inputDone {
			return nil
		}
	}
}

// dispatch handles an operation's error.  Input exhaustion ends the
// session quietly; anything else is logged and reported to the user
// while the menu loop keeps running.
func (s *Session) dispatch(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, io.EOF) {
		s.inputDone = true
		return
	}
	logger.Log.Error("operation failed", "error", err)
	s.console.Error("Operation failed, see the session log.")
}
