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

// MovieRepo manages persistence of the movie catalog in a single flat
// file (movies.txt by default).  Every save rewrites the whole file.
type MovieRepo struct {
	path string
}

// NewMovieRepo constructs a MovieRepo persisting to the given path.
func NewMovieRepo(path string) *MovieRepo {
	return &MovieRepo{path: path}
}

// Load reads the movie file and returns the movies in file order
// together with the number of lines discarded as malformed.  The
// header line and empty lines are skipped.  A missing file is an
// empty catalog, not an error.
func (r *MovieRepo) Load() ([]model.Movie, int, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	defer f.Close()

	var movies []model.Movie
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
		duration, err := strconv.Atoi(fields[2])
		if err != nil {
			skipped++
			continue
		}
		rating, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			skipped++
			continue
		}
		movies = append(movies, model.Movie{
			Title:    fields[0],
			Genre:    fields[1],
			Duration: duration,
			Rating:   rating,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	return movies, skipped, nil
}

// Save truncates the movie file and rewrites it in full: the fixed
// header followed by one line per movie.
func (r *MovieRepo) Save(movies []model.Movie) error {
	var b strings.Builder
	b.WriteString(movieHeader + "\n")
	for _, m := range movies {
		fmt.Fprintf(&b, "%s,%s,%d,%s\n", m.Title, m.Genre, m.Duration, formatFloat(m.Rating))
	}
	return os.WriteFile(r.path, []byte(b.String()), 0o644)
}

// ReadRaw returns the raw file contents, header included, for verbatim
// display.  Unlike Load it reports a missing file as an error so the
// caller can tell "no file yet" apart from an empty listing.
func (r *MovieRepo) ReadRaw() (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
