package movie

import "context"

type Service interface {
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	ListMovies(ctx context.Context) ([]Movie, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	EditMovie(ctx context.Context, id int64, title, genre string) (Movie, error)
	RemoveMovie(ctx context.Context, id int64) error
}

type Repository interface {
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	AllMovies(ctx context.Context) ([]Movie, error)
	MovieByID(ctx context.Context, id int64) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, title, genre string) (Movie, error)
	// DeleteMovie removes the movie and every review referencing it as
	// one atomic unit.
	DeleteMovie(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.CreateMovie(ctx, m)
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

func (uc *Usecase) GetMovie(ctx context.Context, id int64) (Movie, error) {
	return uc.r.MovieByID(ctx, id)
}

func (uc *Usecase) EditMovie(ctx context.Context, id int64, title, genre string) (Movie, error) {
	if err := (Movie{Title: title, Genre: genre}).Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.UpdateMovie(ctx, id, title, genre)
}

func (uc *Usecase) RemoveMovie(ctx context.Context, id int64) error {
	return uc.r.DeleteMovie(ctx, id)
}
