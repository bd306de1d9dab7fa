package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// ReviewRepository is what the review service needs from the data layer.
type ReviewRepository interface {
	GetAll(ctx context.Context) ([]model.Review, error)
	GetByID(ctx context.Context, id uint64) (*model.Review, error)
	GetByMovie(ctx context.Context, movieID uint64) ([]model.Review, error)
	GetByMovieTitle(ctx context.Context, title string) ([]model.Review, error)
	GetByMovieTitleAndDate(ctx context.Context, title, date string) ([]model.Review, error)
	GetByMovieTitleAndRating(ctx context.Context, title string, rating int) ([]model.Review, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Review, error)
	Create(ctx context.Context, b model.ReviewBroker) (*model.Review, error)
	Update(ctx context.Context, id uint64, b model.ReviewBroker) (*model.Review, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// ReviewService wraps the review repository with rating/date validation and
// the one-review-per-movie rule.
type ReviewService struct {
	repo ReviewRepository
}

// NewReviewService constructs a ReviewService.
func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) GetAll(ctx context.Context) ([]model.Review, error) {
	return s.repo.GetAll(ctx)
}

func (s *ReviewService) GetByID(ctx context.Context, id uint64) (*model.Review, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReviewService) GetByMovie(ctx context.Context, movieID uint64) ([]model.Review, error) {
	return s.repo.GetByMovie(ctx, movieID)
}

func (s *ReviewService) GetByMovieTitle(ctx context.Context, title string) ([]model.Review, error) {
	return s.repo.GetByMovieTitle(ctx, title)
}

func (s *ReviewService) GetByMovieTitleAndDate(ctx context.Context, title, date string) ([]model.Review, error) {
	return s.repo.GetByMovieTitleAndDate(ctx, title, date)
}

func (s *ReviewService) GetByMovieTitleAndRating(ctx context.Context, title string, rating int) ([]model.Review, error) {
	return s.repo.GetByMovieTitleAndRating(ctx, title, rating)
}

func (s *ReviewService) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	return s.repo.GetByUser(ctx, userID)
}

func validateReviewFields(b model.ReviewBroker) error {
	if b.Rating < 1 || b.Rating > 5 {
		return ErrRatingInvalid
	}
	if _, err := time.Parse("2006-01-02", b.Date); err != nil {
		return ErrReviewDateInvalid
	}
	return nil
}

// Create rejects a second review of the same movie by the same user, then
// validates the fields and inserts.
func (s *ReviewService) Create(ctx context.Context, b model.ReviewBroker) (*model.Review, error) {
	existing, err := s.repo.GetByUser(ctx, b.UserID)
	if err != nil {
		return nil, err
	}
	for _, rv := range existing {
		if rv.MovieID == b.MovieID {
			return nil, ErrReviewExists
		}
	}
	if err := validateReviewFields(b); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, b)
}

// Update validates the fields and replaces the row.  The duplicate-review
// rule is skipped so a user can revise their own review.
func (s *ReviewService) Update(ctx context.Context, id uint64, b model.ReviewBroker) (*model.Review, error) {
	if err := validateReviewFields(b); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, b)
}

func (s *ReviewService) Delete(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
