package httpserver

import (
	"fmt"
	"strconv"

	"cinelog/errs"
	"cinelog/movie"
	"cinelog/review"

	"github.com/labstack/echo/v4"
)

const (
	successMessage   = "OK"
	defaultErrorCode = "100500"
)

type APIResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
	Info    string      `json:"info,omitempty"`
}

type MovieResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
}

type ReviewResponse struct {
	ID      int64  `json:"id"`
	MovieID int64  `json:"movie_id"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type MovieDetailsResponse struct {
	Movie   MovieResponse    `json:"movie"`
	Reviews []ReviewResponse `json:"reviews"`
}

func toMovieResponse(m movie.Movie) MovieResponse {
	return MovieResponse{
		ID:    m.ID,
		Title: m.Title,
		Genre: m.Genre,
	}
}

func toMovieResponses(movies []movie.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = toMovieResponse(m)
	}
	return out
}

func toReviewResponse(r review.Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		MovieID: r.MovieID,
		Content: r.Content,
		Rating:  r.Rating,
	}
}

func toReviewResponses(reviews []review.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = toReviewResponse(r)
	}
	return out
}

func writeSuccess(c echo.Context, status int, result interface{}) error {
	return c.JSON(status, APIResponse{
		Code:    strconv.Itoa(status),
		Message: successMessage,
		Result:  result,
	})
}

func writeList(c echo.Context, status int, data interface{}) error {
	return writeSuccess(c, status, map[string]interface{}{
		"data": data,
	})
}

func writeError(c echo.Context, status int, message, info string, err error) error {
	return c.JSON(status, APIResponse{
		Code:    errorCode(err, status),
		Message: message,
		Info:    info,
	})
}

func errorCode(err error, status int) string {
	if _, ok := err.(*errs.Error); ok {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			return "100010"
		case errs.ENOTFOUND:
			return "100404"
		case errs.ECONFLICT:
			return "100409"
		case errs.EUNAUTHORIZED:
			return "100401"
		case errs.ENOTIMPLEMENTED:
			return "100501"
		case errs.EINTERNAL:
			return defaultErrorCode
		}
	}

	if status != 0 {
		return fmt.Sprintf("100%03d", status)
	}
	return defaultErrorCode
}
