package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
)

// MovieRepository is what the movie service needs from the data layer.
type MovieRepository interface {
	GetAll(ctx context.Context) ([]model.Movie, error)
	GetByID(ctx context.Context, id uint64) (*model.Movie, error)
	GetByTitle(ctx context.Context, title string) (*model.Movie, error)
	GetByGenre(ctx context.Context, genre string) ([]model.Movie, error)
	GetByAgeRestriction(ctx context.Context, age int) ([]model.Movie, error)
	GetByRating(ctx context.Context, rating float64) ([]model.Movie, error)
	Create(ctx context.Context, b model.MovieBroker) (*model.Movie, error)
	Update(ctx context.Context, id uint64, b model.MovieBroker) (*model.Movie, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// MovieService wraps the movie repository with field validation.
type MovieService struct {
	repo MovieRepository
}

// NewMovieService constructs a MovieService.
func NewMovieService(repo MovieRepository) *MovieService {
	return &MovieService{repo: repo}
}

func (s *MovieService) GetAll(ctx context.Context) ([]model.Movie, error) {
	return s.repo.GetAll(ctx)
}

func (s *MovieService) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	return s.repo.GetByTitle(ctx, title)
}

func (s *MovieService) GetByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	return s.repo.GetByGenre(ctx, genre)
}

func (s *MovieService) GetByAgeRestriction(ctx context.Context, age int) ([]model.Movie, error) {
	return s.repo.GetByAgeRestriction(ctx, age)
}

func (s *MovieService) GetByRating(ctx context.Context, rating float64) ([]model.Movie, error) {
	return s.repo.GetByRating(ctx, rating)
}

// validateFields checks the rules shared by create and update.
func validateMovieFields(b model.MovieBroker) error {
	if b.AgeRestriction < 0 {
		return ErrAgeInvalid
	}
	if !validDuration(b.Duration) {
		return ErrDurationInvalid
	}
	return nil
}

// validDuration accepts the "H.MM" shorthand: hours dot minutes, minutes
// below 60.
func validDuration(d string) bool {
	parts := strings.Split(d, ".")
	if len(parts) != 2 {
		return false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return false
	}
	return true
}

// Create rejects duplicate titles and invalid fields, then inserts.
func (s *MovieService) Create(ctx context.Context, b model.MovieBroker) (*model.Movie, error) {
	if _, err := s.repo.GetByTitle(ctx, b.Title); err == nil {
		return nil, ErrTitleOccupied
	} else if !errors.Is(err, repository.ErrMovieNotFound) {
		return nil, err
	}
	if err := validateMovieFields(b); err != nil {
		return nil, err
	}
	m, err := s.repo.Create(ctx, b)
	if errors.Is(err, repository.ErrMovieExists) {
		return nil, ErrTitleOccupied
	}
	return m, err
}

// Update validates fields and replaces the row.  The title-uniqueness check
// is left to the store so a movie can be re-saved under its own title.
func (s *MovieService) Update(ctx context.Context, id uint64, b model.MovieBroker) (*model.Movie, error) {
	if err := validateMovieFields(b); err != nil {
		return nil, err
	}
	m, err := s.repo.Update(ctx, id, b)
	if errors.Is(err, repository.ErrMovieExists) {
		return nil, ErrTitleOccupied
	}
	return m, err
}

func (s *MovieService) Delete(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
