package model

// Catalog holds the in-memory movie and show collections for the
// current run.  It is loaded from the flat files at startup, mutated
// by admin and customer actions, and written back in full after every
// mutation by the repositories.
type Catalog struct {
	Movies []Movie
	Shows  []Show
}

// FindMovie returns the first movie whose title exactly equals title,
// or nil if there is none.  Matching is case-sensitive.
func (c *Catalog) FindMovie(title string) *Movie {
	for i := range c.Movies {
		if c.Movies[i].Title == title {
			return &c.Movies[i]
		}
	}
	return nil
}

// RemoveMovie deletes every movie whose title exactly equals title
// and every show whose embedded movie carries that title.  Shows are
// matched against their snapshot, not against the catalog, so a show
// created from a since-removed movie still cascades here.
func (c *Catalog) RemoveMovie(title string) {
	movies := c.Movies[:0]
	for _, m := range c.Movies {
		if m.Title != title {
			movies = append(movies, m)
		}
	}
	c.Movies = movies

	shows := c.Shows[:0]
	for _, s := range c.Shows {
		if s.Movie.Title != title {
			shows = append(shows, s)
		}
	}
	c.Shows = shows
}
