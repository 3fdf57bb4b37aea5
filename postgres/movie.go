package postgres

import (
	"context"
	"errors"

	"cinelog/movie"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"not null"`
	Genre string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// CreateMovie persists a new movie and returns it with the generated id.
func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := MovieModel{
		Title: m.Title,
		Genre: m.Genre,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, err
	}
	return toDomainMovie(model), nil
}

// AllMovies fetches every movie in the catalog.
func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = toDomainMovie(model)
	}
	return movies, nil
}

// MovieByID fetches a movie by id.
func (r *MovieRepository) MovieByID(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrMovieNotFound
		}
		return movie.Movie{}, err
	}

	return toDomainMovie(model), nil
}

// UpdateMovie replaces title and genre and returns the updated movie.
func (r *MovieRepository) UpdateMovie(ctx context.Context, id int64, title, genre string) (movie.Movie, error) {
	result := r.db.WithContext(ctx).Model(&MovieModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title": title,
		"genre": genre,
	})
	if result.Error != nil {
		return movie.Movie{}, result.Error
	}
	if result.RowsAffected == 0 {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	return r.MovieByID(ctx, id)
}

// DeleteMovie removes the movie and all reviews referencing it inside a
// single transaction. Either both deletions apply or neither does, so a
// concurrent reader never observes an orphan review.
func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&ReviewModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&MovieModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return movie.ErrMovieNotFound
		}
		return nil
	})
}

func toDomainMovie(model MovieModel) movie.Movie {
	return movie.Movie{
		ID:    model.ID,
		Title: model.Title,
		Genre: model.Genre,
	}
}
