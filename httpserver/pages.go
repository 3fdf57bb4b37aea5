package httpserver

import (
	"net/http"
	"strconv"

	"cinelog/errs"
	"cinelog/movie"
	"cinelog/webpage"

	"github.com/labstack/echo/v4"
)

// RegisterMoviePages wires the HTML page surface. Create and update come
// in as classic form posts, so every success response is a full page.
func (s *Server) RegisterMoviePages() {
	s.Router.GET("/movies", s.showMovieList)
	s.Router.GET("/movies/new", s.showAddMovieForm)
	s.Router.POST("/movies", s.handleAddMovieForm)
	s.Router.GET("/movies/:id", s.showMovieDetails)
	s.Router.GET("/movies/:id/edit", s.showEditMovieForm)
	s.Router.POST("/movies/:id", s.handleEditMovieForm)
	s.Router.POST("/movies/delete/:id", s.handleDeleteMovieForm)
}

func (s *Server) showMovieList(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, webpage.PageMovieList, webpage.MovieListData(movies))
}

func (s *Server) showAddMovieForm(c echo.Context) error {
	return c.Render(http.StatusOK, webpage.PageMovieNew, webpage.NewFormData("", "", ""))
}

func (s *Server) handleAddMovieForm(c echo.Context) error {
	form := movieFormFromContext(c)

	created, err := s.MovieService.AddMovie(c.Request().Context(), movie.Movie{
		Title: form.Title,
		Genre: form.Genre,
	})
	if err != nil {
		if errs.ErrorCode(err) == errs.EINVALID {
			// Redisplay the form with the entered values; nothing was created.
			return c.Render(http.StatusOK, webpage.PageMovieNew,
				webpage.NewFormData(errs.ErrorMessage(err), form.Title, form.Genre))
		}
		return err
	}

	return c.Render(http.StatusOK, webpage.PageMovieDetails, webpage.DetailsData(created, nil))
}

func (s *Server) showMovieDetails(c echo.Context) error {
	id, err := moviePathID(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	reviews, err := s.ReviewService.ListReviewsForMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, webpage.PageMovieDetails, webpage.DetailsData(m, reviews))
}

func (s *Server) showEditMovieForm(c echo.Context) error {
	id, err := moviePathID(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, webpage.PageMovieEdit, webpage.EditFormData(m, ""))
}

func (s *Server) handleEditMovieForm(c echo.Context) error {
	id, err := moviePathID(c)
	if err != nil {
		return err
	}

	form := movieFormFromContext(c)

	updated, err := s.MovieService.EditMovie(c.Request().Context(), id, form.Title, form.Genre)
	if err != nil {
		if errs.ErrorCode(err) == errs.EINVALID {
			entered := movie.Movie{ID: id, Title: form.Title, Genre: form.Genre}
			return c.Render(http.StatusOK, webpage.PageMovieEdit,
				webpage.EditFormData(entered, errs.ErrorMessage(err)))
		}
		return err
	}

	reviews, err := s.ReviewService.ListReviewsForMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, webpage.PageMovieDetails, webpage.DetailsData(updated, reviews))
}

// handleDeleteMovieForm deletes the movie plus its reviews and responds
// with the refreshed list. Deleting a missing id is surfaced as not found
// rather than treated as idempotent success, matching the gateway's
// exactly-one-record-affected contract.
func (s *Server) handleDeleteMovieForm(c echo.Context) error {
	id, err := moviePathID(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.RemoveMovie(c.Request().Context(), id); err != nil {
		return err
	}

	return s.showMovieList(c)
}

func moviePathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Errorf(errs.EINVALID, "invalid movie id")
	}
	return id, nil
}
