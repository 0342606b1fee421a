package handler

import (
	"strconv"

	"github.com/iliyamo/movie-ticket-booking/internal/logger"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/ui"
)

// AdminHandler implements the catalog-management operations: adding
// and removing movies and scheduling shows.  Every mutation rewrites
// the affected file(s) in full before the operation reports success.
type AdminHandler struct {
	console *ui.Console
	catalog *model.Catalog
	movies  *repository.MovieRepo
	shows   *repository.ShowRepo
}

// NewAdminHandler constructs an AdminHandler over the shared catalog
// and repositories.
func NewAdminHandler(console *ui.Console, catalog *model.Catalog, movies *repository.MovieRepo, shows *repository.ShowRepo) *AdminHandler {
	return &AdminHandler{console: console, catalog: catalog, movies: movies, shows: shows}
}

// AddMovie prompts for the movie fields, appends the new movie to the
// catalog and rewrites the movie file.  Unparsable numeric input
// aborts the operation with no state change.
func (h *AdminHandler) AddMovie() error {
	title, err := h.console.ReadLine("Enter movie title: ")
	if err != nil {
		return err
	}
	genre, err := h.console.ReadLine("Genre: ")
	if err != nil {
		return err
	}
	durationStr, err := h.console.ReadLine("Duration (mins): ")
	if err != nil {
		return err
	}
	ratingStr, err := h.console.ReadLine("Rating: ")
	if err != nil {
		return err
	}
	duration, convErr := strconv.Atoi(durationStr)
	if convErr != nil {
		h.console.Error("Invalid number!")
		return nil
	}
	rating, convErr := strconv.ParseFloat(ratingStr, 64)
	if convErr != nil {
		h.console.Error("Invalid number!")
		return nil
	}

	h.catalog.Movies = append(h.catalog.Movies, model.Movie{
		Title:    title,
		Genre:    genre,
		Duration: duration,
		Rating:   rating,
	})
	if err := h.movies.Save(h.catalog.Movies); err != nil {
		return err
	}
	logger.Log.Info("movie added", "title", title)
	h.console.Success("Movie added successfully!")
	return nil
}

// RemoveMovie prompts for a title and removes every movie with that
// exact title along with every show embedding it, then rewrites both
// files.  A title that matches nothing still rewrites and reports
// success; removal is idempotent.
func (h *AdminHandler) RemoveMovie() error {
	title, err := h.console.ReadLine("Enter movie title to remove: ")
	if err != nil {
		return err
	}
	h.catalog.RemoveMovie(title)
	if err := h.movies.Save(h.catalog.Movies); err != nil {
		return err
	}
	if err := h.shows.Save(h.catalog.Shows); err != nil {
		return err
	}
	logger.Log.Info("movie removed", "title", title)
	h.console.Success("Movie and its shows removed successfully!")
	return nil
}

// AddShow lists the catalog with 1-based indices, prompts for a movie
// selection, show time and seat count, appends a show embedding a
// snapshot of the selected movie and rewrites the show file.  An
// out-of-range selection aborts with no mutation.
func (h *AdminHandler) AddShow() error {
	if len(h.catalog.Movies) == 0 {
		h.console.Error("No movies available. Add a movie first!")
		return nil
	}

	h.console.Println("\nAvailable Movies:")
	for i, m := range h.catalog.Movies {
		h.console.Printf("%d. %s\n", i+1, movieLine(m))
	}

	choice, ok, err := h.console.ReadInt("Select movie number: ")
	if err != nil {
		return err
	}
	if !ok || choice < 1 || choice > len(h.catalog.Movies) {
		h.console.Error("Invalid choice!")
		return nil
	}

	showTime, err := h.console.ReadLine("Enter show time (e.g. 2025-11-03 18:30): ")
	if err != nil {
		return err
	}
	seats, ok, err := h.console.ReadInt("Enter total seats: ")
	if err != nil {
		return err
	}
	if !ok || seats < 0 {
		h.console.Error("Invalid number!")
		return nil
	}

	h.catalog.Shows = append(h.catalog.Shows, model.Show{
		Movie:      h.catalog.Movies[choice-1],
		ShowTime:   showTime,
		TotalSeats: seats,
	})
	if err := h.shows.Save(h.catalog.Shows); err != nil {
		return err
	}
	logger.Log.Info("show added", "movie", h.catalog.Movies[choice-1].Title, "time", showTime, "seats", seats)
	h.console.Success("Show added successfully!")
	return nil
}
