package httpserver

import (
	"net/http"

	"cinelog/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterReviewAPIRoutes(g *echo.Group) {
	g.GET("/movies/:id/reviews", s.handleListReviews)
	g.POST("/movies/:id/reviews", s.handleAddReview)
}

// handleListReviews godoc
// @Summary List Reviews
// @Description List the reviews belonging to one movie
// @Tags reviews
// @Produce json
// @Success 200 {array} ReviewResponse
// @Router /api/movies/{id}/reviews [get]
func (s *Server) handleListReviews(c echo.Context) error {
	if s.ReviewService == nil || s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "review service not configured")
	}

	id, err := moviePathID(c)
	if err != nil {
		return err
	}

	// Reviews only exist under a movie, so a missing movie is NotFound
	// rather than an empty list.
	if _, err := s.MovieService.GetMovie(c.Request().Context(), id); err != nil {
		return err
	}

	reviews, err := s.ReviewService.ListReviewsForMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, toReviewResponses(reviews))
}

// handleAddReview godoc
// @Summary Add Review
// @Description Attach a review to an existing movie
// @Tags reviews
// @Accept json
// @Produce json
// @Success 201 {object} ReviewResponse
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id}/reviews [post]
func (s *Server) handleAddReview(c echo.Context) error {
	id, err := moviePathID(c)
	if err != nil {
		return err
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	created, err := s.ReviewService.AddReview(c.Request().Context(), req.ToReview(id))
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, toReviewResponse(created))
}
