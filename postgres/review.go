package postgres

import (
	"context"

	"cinelog/movie"
	"cinelog/review"

	"gorm.io/gorm"
)

// ReviewModel represents the database model for reviews
type ReviewModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	MovieID int64  `gorm:"column:movie_id;not null;index"`
	Content string `gorm:"not null;default:''"`
	Rating  int    `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewRepository implements review.Repository interface
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview inserts a review after checking its movie exists, both in
// one transaction so the review can never reference a deleted movie.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev review.Review) (review.Review, error) {
	var created review.Review

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&MovieModel{}).Where("id = ?", rev.MovieID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return movie.ErrMovieNotFound
		}

		model := ReviewModel{
			MovieID: rev.MovieID,
			Content: rev.Content,
			Rating:  rev.Rating,
		}
		if err := tx.Create(&model).Error; err != nil {
			return err
		}

		created = toDomainReview(model)
		return nil
	})
	if err != nil {
		return review.Review{}, err
	}

	return created, nil
}

// ReviewsByMovie fetches the reviews belonging to one movie only.
func (r *ReviewRepository) ReviewsByMovie(ctx context.Context, movieID int64) ([]review.Review, error) {
	var models []ReviewModel
	if err := r.db.WithContext(ctx).Where("movie_id = ?", movieID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	reviews := make([]review.Review, len(models))
	for i, model := range models {
		reviews[i] = toDomainReview(model)
	}
	return reviews, nil
}

func toDomainReview(model ReviewModel) review.Review {
	return review.Review{
		ID:      model.ID,
		MovieID: model.MovieID,
		Content: model.Content,
		Rating:  model.Rating,
	}
}
