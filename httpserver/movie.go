package httpserver

import (
	"net/http"

	"cinelog/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieAPIRoutes(g *echo.Group) {
	g.GET("/movies", s.handleListMovies)
	g.POST("/movies", s.handleAddMovie)
	g.GET("/movies/:id", s.handleGetMovie)
	g.PUT("/movies/:id", s.handleUpdateMovie)
	g.DELETE("/movies/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description List every movie in the catalog
// @Tags movies
// @Produce json
// @Success 200 {array} MovieResponse
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, toMovieResponses(movies))
}

// handleAddMovie godoc
// @Summary Add Movie
// @Description Create a new movie with title and genre
// @Tags movies
// @Accept json
// @Produce json
// @Success 201 {object} MovieResponse
// @Failure 400 {object} APIResponse
// @Router /api/movies [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	var req AddMovieRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	created, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, toMovieResponse(created))
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Fetch one movie together with its reviews
// @Tags movies
// @Produce json
// @Success 200 {object} MovieDetailsResponse
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
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

	return writeSuccess(c, http.StatusOK, MovieDetailsResponse{
		Movie:   toMovieResponse(m),
		Reviews: toReviewResponses(reviews),
	})
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Replace a movie's title and genre
// @Tags movies
// @Accept json
// @Produce json
// @Success 200 {object} MovieResponse
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	id, err := moviePathID(c)
	if err != nil {
		return err
	}

	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	updated, err := s.MovieService.EditMovie(c.Request().Context(), id, req.Title, req.Genre)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, toMovieResponse(updated))
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Delete a movie and all of its reviews
// @Tags movies
// @Success 204
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	id, err := moviePathID(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.RemoveMovie(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
