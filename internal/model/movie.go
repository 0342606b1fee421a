package model

// Movie represents a static catalog entry for a film that can be
// scheduled for screenings.  Movies are immutable once created:
// removing one replaces the catalog wholesale, there is no in-place
// edit.  The title acts as the key and is matched case-sensitively
// wherever movies are looked up.
//
// Fields:
//  Title    – film title, unique key within the catalog.
//  Genre    – free-text genre label.
//  Duration – running time in minutes (positive).
//  Rating   – viewer rating (e.g. 8.5).
type Movie struct {
	Title    string  // movies.txt column 1
	Genre    string  // movies.txt column 2
	Duration int     // movies.txt column 3
	Rating   float64 // movies.txt column 4
}
