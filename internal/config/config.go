package config // package config loads application configuration from environment variables

import (
	"os"            // os provides access to environment variables
	"path/filepath" // filepath joins the data directory with the fixed file names
	"strconv"       // strconv converts strings to other types
)

// Fixed names of the three data files.  Only their directory is
// configurable; the names themselves are part of the file format.
const (
	moviesFile   = "movies.txt"
	showsFile    = "shows.txt"
	bookingsFile = "bookings.txt"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Every variable is optional:
// with no environment at all the program works out of the current
// directory with the historical defaults.
type Config struct {
	DataDir      string  // directory holding the flat data files
	PricePerSeat float64 // flat price charged per booked seat
	LogFile      string  // path of the session log file
}

// Load reads configuration values from environment variables and
// returns a Config, falling back to defaults for unset or invalid
// values.
func Load() Config {
	return Config{
		DataDir:      getEnv("DATA_DIR", "."),            // where movies.txt etc. live
		PricePerSeat: getEnvFloat("TICKET_PRICE", 200.0), // per-seat ticket price
		LogFile:      getEnv("LOG_FILE", "cinema.log"),   // session log destination
	}
}

// MoviesPath returns the full path of the movie catalog file.
func (c Config) MoviesPath() string { return filepath.Join(c.DataDir, moviesFile) }

// ShowsPath returns the full path of the show schedule file.
func (c Config) ShowsPath() string { return filepath.Join(c.DataDir, showsFile) }

// BookingsPath returns the full path of the bookings log file.
func (c Config) BookingsPath() string { return filepath.Join(c.DataDir, bookingsFile) }

// getEnv retrieves an environment variable, returning fallback when
// the variable is unset or empty.
func getEnv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	return v
}

// getEnvFloat is like getEnv but parses the value as a float.  An
// unparsable value falls back rather than aborting: configuration
// never stops the program from starting.
func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
