package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinelog/httpserver"
	"cinelog/movie"
	"cinelog/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) AddMovie(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) EditMovie(ctx context.Context, id int64, title, genre string) (movie.Movie, error) {
	args := m.Called(ctx, id, title, genre)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) RemoveMovie(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) AddReview(ctx context.Context, r review.Review) (review.Review, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(review.Review), args.Error(1)
}

func (m *MockReviewService) ListReviewsForMovie(ctx context.Context, movieID int64) ([]review.Review, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]review.Review), args.Error(1)
}

func newMovieServer() (*httpserver.Server, *MockMovieService, *MockReviewService) {
	server := httpserver.Default(testConfig())
	movies := new(MockMovieService)
	reviews := new(MockReviewService)
	server.MovieService = movies
	server.ReviewService = reviews
	return server, movies, reviews
}

func TestAPIListMovies(t *testing.T) {
	server, svc, _ := newMovieServer()

	t.Run("should return 200 with the movie list", func(t *testing.T) {
		movies := []movie.Movie{
			{ID: 1, Title: "Spaceballs", Genre: "Comedy"},
			{ID: 2, Title: "Young Frankenstein", Genre: "Comedy"},
		}
		svc.On("ListMovies", mock.Anything).Return(movies, nil).Once()
		request := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code, "Expected 200 OK")
		resp := decodeAPIResponse(t, recorder)
		assert.Equal(t, "200", resp.Code)
		assert.Equal(t, "OK", resp.Message)
		var result struct {
			Data []httpserver.MovieResponse `json:"data"`
		}
		decodeAPIResult(t, resp.Result, &result)
		assert.Len(t, result.Data, 2)
		assert.Equal(t, "Spaceballs", result.Data[0].Title)
		svc.AssertExpectations(t)
	})
}

func TestAPIAddMovie(t *testing.T) {
	server, svc, _ := newMovieServer()

	t.Run("should return 201 with the created movie", func(t *testing.T) {
		m := movie.Movie{Title: "Back to the Future", Genre: "Science Fiction"}
		created := movie.Movie{ID: 5, Title: m.Title, Genre: m.Genre}
		svc.On("AddMovie", mock.Anything, m).Return(created, nil).Once()
		request := newAddMovieRequest(m.Title, m.Genre)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code, "Expected 201 Created")
		resp := decodeAPIResponse(t, recorder)
		assert.Equal(t, "201", resp.Code)
		var result httpserver.MovieResponse
		decodeAPIResult(t, resp.Result, &result)
		assert.Equal(t, int64(5), result.ID)
		assert.Equal(t, "Science Fiction", result.Genre)
		svc.AssertExpectations(t)
	})

	t.Run("should return 400 when title is missing", func(t *testing.T) {
		server, svc, _ := newMovieServer()
		request := newAddMovieRequest("", "Comedy")
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "Expected 400 Bad Request")
		resp := decodeAPIResponse(t, recorder)
		assert.Equal(t, "100010", resp.Code)
		svc.AssertNotCalled(t, "AddMovie")
	})

	t.Run("should return 400 when JSON is malformed", func(t *testing.T) {
		server, svc, _ := newMovieServer()
		request := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{"title": "Goofy", invalid json`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "Expected 400 Bad Request for malformed JSON")
		resp := decodeAPIResponse(t, recorder)
		assert.Equal(t, "100010", resp.Code)
		svc.AssertNotCalled(t, "AddMovie")
	})
}

func TestAPIGetMovie(t *testing.T) {
	server, svc, reviews := newMovieServer()

	t.Run("should return the movie with its reviews", func(t *testing.T) {
		m := movie.Movie{ID: 3, Title: "Spaceballs", Genre: "Comedy"}
		svc.On("GetMovie", mock.Anything, int64(3)).Return(m, nil).Once()
		reviews.On("ListReviewsForMovie", mock.Anything, int64(3)).Return([]review.Review{
			{ID: 1, MovieID: 3, Content: "great", Rating: 5},
		}, nil).Once()
		request := httptest.NewRequest(http.MethodGet, "/api/movies/3", nil)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		var result httpserver.MovieDetailsResponse
		decodeAPIResult(t, resp.Result, &result)
		assert.Equal(t, "Spaceballs", result.Movie.Title)
		assert.Len(t, result.Reviews, 1)
		svc.AssertExpectations(t)
		reviews.AssertExpectations(t)
	})

	t.Run("should return 404 for a missing movie", func(t *testing.T) {
		svc.On("GetMovie", mock.Anything, int64(99)).Return(movie.Movie{}, movie.ErrMovieNotFound).Once()
		request := httptest.NewRequest(http.MethodGet, "/api/movies/99", nil)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.Equal(t, "100404", resp.Code)
		svc.AssertExpectations(t)
	})

	t.Run("should return 400 for a non-numeric id", func(t *testing.T) {
		server, svc, _ := newMovieServer()
		request := httptest.NewRequest(http.MethodGet, "/api/movies/abc", nil)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		svc.AssertNotCalled(t, "GetMovie")
	})
}

func TestAPIUpdateMovie(t *testing.T) {
	server, svc, _ := newMovieServer()

	t.Run("should return the updated movie", func(t *testing.T) {
		updated := movie.Movie{ID: 7, Title: "Goofy", Genre: "Documentary"}
		svc.On("EditMovie", mock.Anything, int64(7), "Goofy", "Documentary").Return(updated, nil).Once()
		request := httptest.NewRequest(http.MethodPut, "/api/movies/7", strings.NewReader(`{"title":"Goofy","genre":"Documentary"}`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Documentary")
		assert.NotContains(t, recorder.Body.String(), "Comedy")
		svc.AssertExpectations(t)
	})

	t.Run("should return 400 when genre is blank", func(t *testing.T) {
		server, svc, _ := newMovieServer()
		request := httptest.NewRequest(http.MethodPut, "/api/movies/7", strings.NewReader(`{"title":"Goofy","genre":"   "}`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		svc.AssertNotCalled(t, "EditMovie")
	})
}

func TestAPIDeleteMovie(t *testing.T) {
	server, svc, _ := newMovieServer()

	t.Run("should return 204 on success", func(t *testing.T) {
		svc.On("RemoveMovie", mock.Anything, int64(4)).Return(nil).Once()
		request := httptest.NewRequest(http.MethodDelete, "/api/movies/4", nil)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		svc.AssertExpectations(t)
	})

	t.Run("should return 404 for a missing movie", func(t *testing.T) {
		svc.On("RemoveMovie", mock.Anything, int64(99)).Return(movie.ErrMovieNotFound).Once()
		request := httptest.NewRequest(http.MethodDelete, "/api/movies/99", nil)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		svc.AssertExpectations(t)
	})
}

func newAddMovieRequest(title, genre string) *http.Request {
	body := strings.NewReader(`{"title":"` + title + `","genre":"` + genre + `"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/movies", body)
	request.Header.Set("Content-Type", "application/json")
	return request
}
