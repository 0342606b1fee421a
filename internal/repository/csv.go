// Package repository persists the movie catalog, the show schedule and
// the bookings log as comma-separated flat files.  The format is
// deliberately primitive: one header line, then one record per line
// with fields joined by bare commas.  There is no quoting or escaping,
// so a text field containing a comma corrupts its line on reload; this
// is a documented limitation of the format, not something the loaders
// try to repair.
//
// Loaders skip lines they cannot parse and keep going.  The skip is
// silent by policy, but every loader reports how many lines it
// discarded so the caller can log the count.
package repository

import (
	"strconv"
	"strings"
)

// Fixed header lines of the three data files.
const (
	movieHeader   = "Title,Genre,Duration,Rating"
	showHeader    = "Movie,ShowTime,TotalSeats,Booked"
	bookingHeader = "ID,Movie,ShowTime,Seats,Price"
)

// splitRecord splits a data line into at least want comma-separated
// fields.  Extra trailing fields are ignored, mirroring how the file
// format has always been read; too few fields is a parse failure.
func splitRecord(line string, want int) ([]string, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < want {
		return nil, false
	}
	return fields[:want], true
}

// formatFloat renders a float the way the files have always stored
// them: shortest representation that round-trips, no forced decimals
// (600 stays "600", 8.5 stays "8.5").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
