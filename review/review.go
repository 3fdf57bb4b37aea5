package review

import "cinelog/errs"

var ErrInvalidMovie = errs.Errorf(errs.EINVALID, "review: owning movie is required")

// Review is a rating plus comment owned by exactly one movie. A review
// cannot outlive its movie: deleting the movie deletes its reviews.
type Review struct {
	ID      int64
	MovieID int64
	Content string
	Rating  int
}

func (r Review) Validate() error {
	if r.MovieID <= 0 {
		return ErrInvalidMovie
	}

	return nil
}
