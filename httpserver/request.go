package httpserver

import (
	"strings"

	"cinelog/movie"
	"cinelog/review"

	"github.com/labstack/echo/v4"
)

type AddMovieRequest struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
	Genre string `json:"genre" validate:"required,notblank,max=100"`
}

func (r AddMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title: r.Title,
		Genre: r.Genre,
	}
}

type UpdateMovieRequest struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
	Genre string `json:"genre" validate:"required,notblank,max=100"`
}

type AddReviewRequest struct {
	Content string `json:"content" validate:"max=2000"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

func (r AddReviewRequest) ToReview(movieID int64) review.Review {
	return review.Review{
		MovieID: movieID,
		Content: r.Content,
		Rating:  r.Rating,
	}
}

// MovieForm carries the fields of the HTML create/edit forms. Form posts
// are parsed explicitly so empty fields reach the usecase validation and
// come back as a redisplayed form instead of a binding error.
type MovieForm struct {
	Title string
	Genre string
}

func movieFormFromContext(c echo.Context) MovieForm {
	return MovieForm{
		Title: strings.TrimSpace(c.FormValue("Title")),
		Genre: strings.TrimSpace(c.FormValue("Genre")),
	}
}
