package repository

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// ShowRepo manages persistence of the show schedule in a single flat
// file (shows.txt by default).  Every save rewrites the whole file.
type ShowRepo struct {
	path string
}

// NewShowRepo constructs a ShowRepo persisting to the given path.
func NewShowRepo(path string) *ShowRepo {
	return &ShowRepo{path: path}
}

// Load reads the show file and returns the shows in file order plus
// the number of discarded lines.  Each line's movie title is resolved
// against the already-loaded catalog by exact first match; lines whose
// title resolves to nothing count as discarded.
//
// Booked seats are not restored by assignment.  The persisted count is
// replayed through Show.BookSeat one seat at a time, so the capacity
// check runs on every unit and a count larger than the capacity ends
// up clamped at TotalSeats instead of restored verbatim.  A load
// therefore never produces a show violating the seat invariant, even
// from a hand-edited file.
func (r *ShowRepo) Load(movies []model.Movie) ([]model.Show, int, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	defer f.Close()

	var shows []model.Show
	skipped := 0
	header := true
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if header {
			header = false
			continue
		}
		if line == "" {
			continue
		}
		fields, ok := splitRecord(line, 4)
		if !ok {
			skipped++
			continue
		}
		total, err := strconv.Atoi(fields[2])
		if err != nil {
			skipped++
			continue
		}
		booked, err := strconv.Atoi(fields[3])
		if err != nil {
			skipped++
			continue
		}
		movie := findMovie(movies, fields[0])
		if movie == nil {
			skipped++
			continue
		}
		s := model.Show{Movie: *movie, ShowTime: fields[1], TotalSeats: total}
		for i := 0; i < booked; i++ {
			// Replay failures are silent: once the show is full the
			// remaining persisted units are dropped.
			_ = s.BookSeat(1)
		}
		shows = append(shows, s)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	return shows, skipped, nil
}

// Save truncates the show file and rewrites it in full: the fixed
// header followed by one line per show.
func (r *ShowRepo) Save(shows []model.Show) error {
	var b strings.Builder
	b.WriteString(showHeader + "\n")
	for _, s := range shows {
		fmt.Fprintf(&b, "%s,%s,%d,%d\n", s.Movie.Title, s.ShowTime, s.TotalSeats, s.BookedSeats)
	}
	return os.WriteFile(r.path, []byte(b.String()), 0o644)
}

// findMovie returns the first movie with exactly the given title, or
// nil when no catalog entry matches.
func findMovie(movies []model.Movie, title string) *model.Movie {
	for i := range movies {
		if movies[i].Title == title {
			return &movies[i]
		}
	}
	return nil
}
