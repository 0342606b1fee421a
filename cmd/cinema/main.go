package main // Entry point package

import (
	"log" // Logging for startup failures, before the session log exists
	"os"  // Standard streams for the console session

	"github.com/joho/godotenv" // Optional .env loading

	"github.com/iliyamo/movie-ticket-booking/internal/config"     // Internal config loader
	"github.com/iliyamo/movie-ticket-booking/internal/handler"    // Admin and customer operations
	"github.com/iliyamo/movie-ticket-booking/internal/logger"     // Session log
	"github.com/iliyamo/movie-ticket-booking/internal/model"      // Domain records and catalog
	"github.com/iliyamo/movie-ticket-booking/internal/repository" // Flat-file persistence
	"github.com/iliyamo/movie-ticket-booking/internal/session"    // Menu loop driver
	"github.com/iliyamo/movie-ticket-booking/internal/ui"         // Console I/O
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Continuing with defaults...")
	}
	cfg := config.Load() // Load environment config

	if err := logger.Init(cfg.LogFile); err != nil {
		log.Fatalf("cannot open session log: %v", err)
	}
	logger.Log.Info("session started", "data_dir", cfg.DataDir, "price_per_seat", cfg.PricePerSeat)

	movieRepo := repository.NewMovieRepo(cfg.MoviesPath())
	showRepo := repository.NewShowRepo(cfg.ShowsPath())
	bookingLog := repository.NewBookingLog(cfg.BookingsPath())

	movies, skipped, err := movieRepo.Load() // Load the persisted catalog
	if err != nil {
		log.Fatalf("cannot load movies: %v", err)
	}
	if skipped > 0 {
		logger.Log.Warn("discarded malformed movie lines", "count", skipped)
	}
	shows, skipped, err := showRepo.Load(movies) // Shows resolve against the loaded movies
	if err != nil {
		log.Fatalf("cannot load shows: %v", err)
	}
	if skipped > 0 {
		logger.Log.Warn("discarded malformed show lines", "count", skipped)
	}

	catalog := &model.Catalog{Movies: movies, Shows: shows}
	console := ui.NewConsole(os.Stdin, os.Stdout)
	counter := model.NewTicketCounter() // Ticket IDs start at 1000 each run

	admin := handler.NewAdminHandler(console, catalog, movieRepo, showRepo)
	customer := handler.NewCustomerHandler(console, catalog, movieRepo, showRepo, bookingLog, counter, cfg.PricePerSeat)

	if err := session.New(console, admin, customer).Run(); err != nil {
		logger.Log.Error("session ended abnormally", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("session ended")
}
