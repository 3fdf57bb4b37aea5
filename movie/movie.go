package movie

import (
	"strings"

	"cinelog/errs"
)

var (
	ErrInvalidTitle  = errs.Errorf(errs.EINVALID, "movie: title is required")
	ErrInvalidGenre  = errs.Errorf(errs.EINVALID, "movie: genre is required")
	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")
)

// Movie is the primary catalog entity. ID is assigned by storage on
// creation and immutable afterwards.
type Movie struct {
	ID    int64
	Title string
	Genre string
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}

	if strings.TrimSpace(m.Genre) == "" {
		return ErrInvalidGenre
	}

	return nil
}
