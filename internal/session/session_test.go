package session

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/ui"
)

// runSession drives a full session over scripted input and returns
// everything printed.
func runSession(t *testing.T, input string, catalog *model.Catalog) string {
	t.Helper()
	dir := t.TempDir()
	out := &bytes.Buffer{}
	console := ui.NewConsole(strings.NewReader(input), out)
	movies := repository.NewMovieRepo(filepath.Join(dir, "movies.txt"))
	shows := repository.NewShowRepo(filepath.Join(dir, "shows.txt"))
	bookings := repository.NewBookingLog(filepath.Join(dir, "bookings.txt"))
	admin := handler.NewAdminHandler(console, catalog, movies, shows)
	customer := handler.NewCustomerHandler(console, catalog, movies, shows, bookings, model.NewTicketCounter(), 200.0)

	require.NoError(t, New(console, admin, customer).Run())
	return out.String()
}

func TestAdminMenuExit(t *testing.T) {
	out := runSession(t, "1\n4\n", &model.Catalog{})
	assert.Contains(t, out, "=== Admin Menu ===")
	assert.Contains(t, out, "Exiting Admin Panel...")
}

func TestCustomerMenuExit(t *testing.T) {
	out := runSession(t, "2\n5\n", &model.Catalog{})
	assert.Contains(t, out, "=== Customer Menu ===")
	assert.Contains(t, out, "Thank you for using Movie Booking System!")
}

func TestInvalidChoiceRedisplaysMenu(t *testing.T) {
	out := runSession(t, "1\n9\n4\n", &model.Catalog{})
	assert.Contains(t, out, "Invalid choice!")
	// The menu shows again after the bad choice, then exits cleanly.
	assert.Equal(t, 2, strings.Count(out, "=== Admin Menu ==="))
	assert.Contains(t, out, "Exiting Admin Panel...")
}

func TestNonNumericChoiceIsInvalid(t *testing.T) {
	out := runSession(t, "2\nhelp\n5\n", &model.Catalog{})
	assert.Contains(t, out, "Invalid choice!")
	assert.Contains(t, out, "Thank you for using Movie Booking System!")
}

func TestNonAdminModeRunsCustomerMenu(t *testing.T) {
	// Historically any mode other than 1 lands in the customer menu.
	out := runSession(t, "7\n5\n", &model.Catalog{})
	assert.Contains(t, out, "=== Customer Menu ===")
}

func TestSessionEndsOnExhaustedInput(t *testing.T) {
	// No exit option chosen: the driver must stop at EOF instead of
	// looping forever.
	out := runSession(t, "1\n", &model.Catalog{})
	assert.Contains(t, out, "=== Admin Menu ===")
}

func TestMenuDispatchReachesHandlers(t *testing.T) {
	catalog := &model.Catalog{}
	out := runSession(t, "1\n1\nDune\nSci-Fi\n155\n8.5\n4\n", catalog)
	assert.Contains(t, out, "Movie added successfully!")
	require.Len(t, catalog.Movies, 1)
	assert.Equal(t, "Dune", catalog.Movies[0].Title)
}
