package review

import "context"

type Service interface {
	AddReview(ctx context.Context, r Review) (Review, error)
	ListReviewsForMovie(ctx context.Context, movieID int64) ([]Review, error)
}

type Repository interface {
	// CreateReview persists a review after verifying the owning movie
	// exists; it returns movie.ErrMovieNotFound otherwise.
	CreateReview(ctx context.Context, r Review) (Review, error)
	ReviewsByMovie(ctx context.Context, movieID int64) ([]Review, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AddReview(ctx context.Context, rev Review) (Review, error) {
	if err := rev.Validate(); err != nil {
		return Review{}, err
	}
	return uc.r.CreateReview(ctx, rev)
}

func (uc *Usecase) ListReviewsForMovie(ctx context.Context, movieID int64) ([]Review, error) {
	return uc.r.ReviewsByMovie(ctx, movieID)
}
